package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api/wisdom/packets"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/wisdom"
)

type ProverbController struct {
	facade *wisdom.Facade
}

// ProverbModule mounts the /proverbs and /categories endpoints
func ProverbModule(facade *wisdom.Facade) api.Module {
	ctl := &ProverbController{facade: facade}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/proverbs", ctl.listProverbs)
		c.GET("/proverbs/random", ctl.randomProverb)
		c.GET("/categories", ctl.listCategories)
	})
}

// GET /api/proverbs?category=Patience
func (p *ProverbController) listProverbs(ctx *gin.Context) (any, *api.APIError) {
	raw, filtered := ctx.GetQuery("category")
	if !filtered {
		all := p.facade.AllProverbs()
		return packets.ProverbListResponse{Count: len(all), Proverbs: all}, nil
	}

	category, err := model.ParseCategory(raw)
	if err != nil {
		return nil, api.BadRequest(err.Error())
	}

	matched := p.facade.ProverbsByCategory(category)
	return packets.ProverbListResponse{
		Category: &category,
		Count:    len(matched),
		Proverbs: matched,
	}, nil
}

// GET /api/proverbs/random
func (p *ProverbController) randomProverb(ctx *gin.Context) (any, *api.APIError) {
	return p.facade.RandomProverb(), nil
}

// GET /api/categories
func (p *ProverbController) listCategories(ctx *gin.Context) (any, *api.APIError) {
	return packets.CategoriesResponse{Categories: model.Categories()}, nil
}
