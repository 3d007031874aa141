package handler

import (
	"github.com/aryalmuskan17/GuffSuffFYP/internal/configs"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/auth/google"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/store"
)

// AppDeps bundles the dependencies shared by all HTTP handlers.
type AppDeps struct {
	Config *configs.AppConfig
	Users  store.UserStore
	Google *google.Provider
}
