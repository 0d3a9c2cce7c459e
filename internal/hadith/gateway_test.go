package hadith_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/apperr"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/hadith"
)

const bukhariBody = `{"data":{"id":42,"book":"Sahih al-Bukhari","bookName":" Revelation ","chapterName":" How the Divine Revelation started ","hadith_english":"Actions are judged by intentions.","header":"  Narrated Umar bin Al-Khattab:  ","refno":"Sahih al-Bukhari 1"}}`

func newUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestFetchBukhari(t *testing.T) {
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bukhari/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bukhariBody))
	})

	gw := hadith.NewGateway(server.URL + "/")
	h, err := gw.FetchBukhari(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "42", h.ID)
	assert.Equal(t, "Sahih al-Bukhari", h.Collection)
	assert.Equal(t, "Actions are judged by intentions.", h.TextEnglish)
	assert.Nil(t, h.TextArabic)
	require.NotNil(t, h.Narrator)
	assert.Equal(t, "Narrated Umar bin Al-Khattab:", *h.Narrator)
	require.NotNil(t, h.BookName)
	assert.Equal(t, "Revelation", *h.BookName)
}

func TestFetchMuslimUsesMuslimPath(t *testing.T) {
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/muslim/", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"id":"9","hadith_english":"Religion is sincerity."}}`))
	})

	h, err := hadith.NewGateway(server.URL).FetchMuslim(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "9", h.ID)
	assert.Equal(t, "Sahih Muslim", h.Collection)
}

func TestFetchRandomUsesInjectedRand(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		_, _ = w.Write([]byte(`{"data":{"id":1,"hadith_english":"x"}}`))
	})

	gw := hadith.NewGateway(server.URL, hadith.WithRand(&seqRand{values: []int{1, 0}}))
	_, err := gw.FetchRandom(context.Background())
	require.NoError(t, err)
	_, err = gw.FetchRandom(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/muslim/", "/bukhari/"}, paths)
}

func TestFetchServerErrorYieldsGatewayError(t *testing.T) {
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	h, err := hadith.NewGateway(server.URL).FetchBukhari(context.Background())
	require.Error(t, err)
	assert.Nil(t, h)

	var gwErr *apperr.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusInternalServerError, gwErr.StatusCode)
	assert.False(t, apperr.IsParse(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestFetchStatusErrorCarriesTruncatedBody(t *testing.T) {
	long := strings.Repeat("x", 500)
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(long))
	})

	_, err := hadith.NewGateway(server.URL).FetchMuslim(context.Background())
	require.Error(t, err)

	var gwErr *apperr.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusBadGateway, gwErr.StatusCode)
	require.Error(t, gwErr.Err)
	assert.Equal(t, strings.Repeat("x", 200)+"...", gwErr.Err.Error())
}

func TestFetchMalformedBodyYieldsParseError(t *testing.T) {
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":1}}`))
	})

	h, err := hadith.NewGateway(server.URL).FetchBukhari(context.Background())
	require.Error(t, err)
	assert.Nil(t, h)
	assert.True(t, apperr.IsParse(err))
	assert.True(t, apperr.IsGateway(err))
}

func TestFetchTransportFaultYieldsGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	h, err := hadith.NewGateway(url).FetchMuslim(context.Background())
	require.Error(t, err)
	assert.Nil(t, h)
	assert.True(t, apperr.IsGateway(err))
	assert.Equal(t, 0, apperr.StatusCode(err))
}

func TestFetchDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := hadith.NewGateway(server.URL).FetchBukhari(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchHonoursCancelledContext(t *testing.T) {
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(bukhariBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hadith.NewGateway(server.URL).FetchBukhari(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
