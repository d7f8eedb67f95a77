package domain

import (
	"fmt"
	"strings"
)

type Owner string

type CharacterID int64

type Class string

const (
	ClassWarlock Class = "Warlock"
	ClassPaladin Class = "Paladin"
	ClassShaman  Class = "Shaman"
	ClassMage    Class = "Mage"
	ClassDruid   Class = "Druid"
	ClassWarrior Class = "Warrior"
)

type Role string

const (
	RoleTank      Role = "Tank"
	RoleHeal      Role = "Heal"
	RoleMeleeDPS  Role = "Melee_Dps"
	RoleRangedDPS Role = "Ranged_Dps"
)

// CandidateRecord is a character that has not been persisted yet.
type CandidateRecord struct {
	Name  string
	Class Class
	Role  Role
}

type Character struct {
	ID    CharacterID
	Owner Owner
	Name  string
	Class Class
	Role  Role
}

func (c Character) String() string {
	return fmt.Sprintf("%s - %s - %s", c.Name, c.Class, c.Role)
}

func (o Owner) Validate() error {
	if strings.TrimSpace(string(o)) == "" {
		return ErrInvalidOwner
	}
	return nil
}
