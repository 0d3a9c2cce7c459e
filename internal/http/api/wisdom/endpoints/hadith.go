package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/hadith"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/wisdom"
)

type HadithController struct {
	facade *wisdom.Facade
}

// HadithModule mounts the /hadith endpoints
func HadithModule(facade *wisdom.Facade) api.Module {
	ctl := &HadithController{facade: facade}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/hadith/random", ctl.randomHadith)
		c.GET("/hadith/:collection/random", ctl.collectionHadith)
	})
}

// GET /api/hadith/random
func (h *HadithController) randomHadith(ctx *gin.Context) (any, *api.APIError) {
	x, err := h.facade.RandomHadith(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError("[hadith] random", err)
	}
	return x, nil
}

// GET /api/hadith/:collection/random
func (h *HadithController) collectionHadith(ctx *gin.Context) (any, *api.APIError) {
	collection, err := hadith.ParseCollection(ctx.Param("collection"))
	if err != nil {
		log.Warn().Str("collection", ctx.Param("collection")).Msg("[hadith] unknown collection")
		return nil, api.BadRequest(err.Error())
	}

	x, err := h.facade.HadithFrom(ctx.Request.Context(), collection)
	if err != nil {
		return nil, api.FromError("[hadith] "+collection.String(), err)
	}
	return x, nil
}
