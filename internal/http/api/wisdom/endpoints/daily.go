package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api/wisdom/packets"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/wisdom"
)

// Broadcaster pushes a wisdom update to screens. *broadcast.Publisher satisfies it.
type Broadcaster interface {
	Topic() string
	Publish(w model.Wisdom) error
}

type DailyController struct {
	facade      *wisdom.Facade
	broadcaster Broadcaster
}

// DailyModule mounts the /wisdom endpoints. broadcaster may be nil.
func DailyModule(facade *wisdom.Facade, broadcaster Broadcaster) api.Module {
	ctl := &DailyController{facade: facade, broadcaster: broadcaster}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/wisdom/daily", ctl.daily)
		c.POST("/wisdom/broadcast", ctl.broadcast)
	})
}

// GET /api/wisdom/daily
func (d *DailyController) daily(ctx *gin.Context) (any, *api.APIError) {
	w, err := d.facade.Daily(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError("[wisdom] daily", err)
	}
	return w, nil
}

// POST /api/wisdom/broadcast
func (d *DailyController) broadcast(ctx *gin.Context) (any, *api.APIError) {
	if d.broadcaster == nil {
		return nil, &api.APIError{Code: http.StatusServiceUnavailable, Message: "broadcasting is not configured"}
	}

	w, err := d.facade.Daily(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError("[wisdom] broadcast", err)
	}

	if err := d.broadcaster.Publish(*w); err != nil {
		log.Error().Err(err).Str("topic", d.broadcaster.Topic()).Msg("[wisdom] broadcast publish failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not publish to screens"}
	}

	return packets.BroadcastResponse{Topic: d.broadcaster.Topic(), Wisdom: *w}, nil
}
