package service

import (
	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/session"
	"github.com/nroshal/tastebook/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	RecipeService  ClientRecipeService
	CookingService ClientCookingService
}

func NewClientServices(sessionStore *session.Store, localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(sessionStore, serverAdapter, logger),
		RecipeService:  NewClientRecipeService(localStore, serverAdapter, logger),
		CookingService: NewClientCookingService(localStore, serverAdapter, logger),
	}
}
