package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api/wisdom/packets"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/wisdom"
)

type ReflectionController struct {
	facade *wisdom.Facade
}

// ReflectionModule mounts the /reflections endpoints
func ReflectionModule(facade *wisdom.Facade) api.Module {
	ctl := &ReflectionController{facade: facade}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/reflections", ctl.reflect)
		c.GET("/reflections/random", ctl.reflectRandom)
	})
}

// POST /api/reflections
func (r *ReflectionController) reflect(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ReflectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Warn().Err(err).Msg("[reflection] invalid request body")
		return nil, api.BadRequest("invalid hadith: collection and textEnglish are required")
	}

	h := request.ToHadith()
	if h.TextEnglish == "" || h.Collection == "" {
		return nil, api.BadRequest("invalid hadith: collection and textEnglish are required")
	}

	reflections, err := r.facade.Reflect(ctx.Request.Context(), h)
	if err != nil {
		return nil, api.FromError("[reflection] reflect", err)
	}
	return packets.ReflectionsResponse{Hadith: h, Reflections: reflections}, nil
}

// GET /api/reflections/random
func (r *ReflectionController) reflectRandom(ctx *gin.Context) (any, *api.APIError) {
	h, err := r.facade.RandomHadith(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError("[reflection] fetch hadith", err)
	}

	reflections, err := r.facade.Reflect(ctx.Request.Context(), *h)
	if err != nil {
		return nil, api.FromError("[reflection] reflect", err)
	}
	return packets.ReflectionsResponse{Hadith: *h, Reflections: reflections}, nil
}
