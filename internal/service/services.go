package service

import (
	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/config"
	"github.com/eren460540/ZyraZoo/internal/engine"
	"github.com/eren460540/ZyraZoo/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Profile   *ProfileService
	Team      *TeamService
	Menagerie *MenagerieService
	Battle    *BattleService
}

func NewServices(repos *repository.Repositories, cat *catalog.Catalog, broadcaster BattleBroadcaster, cfg *config.Config) *Services {
	eng := engine.New(cat)
	return &Services{
		Auth:      NewAuthService(repos.User, repos.Session, repos.Profile, cfg),
		Profile:   NewProfileService(repos.Profile, repos.AnimalHolding),
		Team:      NewTeamService(cat, repos.Profile, repos.TeamSlot, repos.AnimalHolding, repos.FoodHolding),
		Menagerie: NewMenagerieService(cat, repos.Profile, repos.AnimalHolding, repos.FoodHolding, repos.TeamSlot, repos.GlobalStat),
		Battle:    NewBattleService(cat, eng, repos.Profile, repos.TeamSlot, repos.BattleRecord, broadcaster),
	}
}
