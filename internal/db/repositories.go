package db

import "gorm.io/gorm"

type Repositories struct {
	Users *UserRepository
	Dojos *DojoRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users: NewUserRepository(database),
		Dojos: NewDojoRepository(database),
	}
}
