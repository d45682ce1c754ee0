package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"facilities-console/internal/views"
	"facilities-console/pkg/api"
)

// ClientCounter - сколько живых списков открыто по сущности.
type ClientCounter interface {
	ClientCount(topic string) int
}

type IndexController struct {
	*Base
	hub      ClientCounter
	entities []string
}

func NewIndexController(base *Base, hub ClientCounter, entities ...string) *IndexController {
	return &IndexController{Base: base, hub: hub, entities: entities}
}

func (ctrl *IndexController) Index(c echo.Context) error {
	page := views.IndexPage{Sections: navigation}
	page.Layout = ctrl.layout(c, "Inicio", "/")
	return c.Render(http.StatusOK, views.PageIndex, page)
}

type healthBody struct {
	Status      string         `json:"status"`
	LiveClients map[string]int `json:"liveClients"`
}

func (ctrl *IndexController) Healthz(c echo.Context) error {
	body := healthBody{Status: "ok", LiveClients: make(map[string]int, len(ctrl.entities))}
	for _, e := range ctrl.entities {
		body.LiveClients[e] = ctrl.hub.ClientCount(e)
	}
	return api.SuccessOne(c, http.StatusOK, "ok", body)
}
