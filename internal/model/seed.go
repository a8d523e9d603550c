package model

// SeedData is the content of an admin seed file
type SeedData struct {
	Users      []SeedUser      `yaml:"users"`
	Characters []SeedCharacter `yaml:"characters"`
	Planets    []SeedPlanet    `yaml:"planets"`
}

// SeedUser is a user entry in a seed file
type SeedUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	IsActive bool   `yaml:"is_active"`
}

// SeedCharacter is a character entry in a seed file
type SeedCharacter struct {
	Name   string `yaml:"name"`
	Gender string `yaml:"gender"`
}

// SeedPlanet is a planet entry in a seed file
type SeedPlanet struct {
	Name string `yaml:"name"`
}
