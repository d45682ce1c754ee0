package entities

import "github.com/aarondl/null/v8"

// Asset - физический актив. NIA связывает его с внешним реестром имущества.
type Asset struct {
	ID              uint64   `json:"id"`
	NIA             string   `json:"nia"`
	Name            string   `json:"nombre"`
	Description     string   `json:"descripcion"`
	EnvironmentID   null.Int `json:"ambiente_id"`
	EnvironmentName string   `json:"ambiente_nombre"`
	EnvironmentCode string   `json:"ambiente_codigo"`
}

type Environment struct {
	ID   uint64 `json:"id"`
	Code string `json:"codigo"`
	Name string `json:"nombre"`
}
