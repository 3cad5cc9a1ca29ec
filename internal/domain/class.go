package domain

import (
	"time"

	"github.com/m04kA/SMC-PoolService/pkg/types"
)

// ClassType kind of swim class
type ClassType string

const (
	ClassGroup        ClassType = "group"
	ClassIndividual   ClassType = "individual"
	ClassAquaAerobics ClassType = "aqua_aerobics"
	ClassFreeTraining ClassType = "free_training"
)

// ClassTypes все допустимые типы занятий
var ClassTypes = []ClassType{
	ClassGroup,
	ClassIndividual,
	ClassAquaAerobics,
	ClassFreeTraining,
}

// ParseClassType конвертирует строку в ClassType с валидацией
func ParseClassType(s string) (ClassType, error) {
	switch ct := ClassType(s); ct {
	case ClassGroup, ClassIndividual, ClassAquaAerobics, ClassFreeTraining:
		return ct, nil
	default:
		return "", ErrInvalidClassType
	}
}

// SwimLevel swimmer level a class is aimed at
type SwimLevel string

const (
	LevelBeginner     SwimLevel = "beginner"
	LevelIntermediate SwimLevel = "intermediate"
	LevelAdvanced     SwimLevel = "advanced"
	LevelCompetitive  SwimLevel = "competitive"
)

// SwimLevels все допустимые уровни
var SwimLevels = []SwimLevel{
	LevelBeginner,
	LevelIntermediate,
	LevelAdvanced,
	LevelCompetitive,
}

// ParseSwimLevel конвертирует строку в SwimLevel с валидацией
func ParseSwimLevel(s string) (SwimLevel, error) {
	switch lvl := SwimLevel(s); lvl {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelCompetitive:
		return lvl, nil
	default:
		return "", ErrInvalidSwimLevel
	}
}

// SwimClass represents a scheduled swim class
type SwimClass struct {
	ID                  string
	Title               string
	Description         string
	Level               SwimLevel
	ClassType           ClassType
	DurationMinutes     int
	MaxCapacity         int
	Price               float64
	InstructorID        string
	Equipment           []string
	StartsAt            time.Time
	AssignedLane        *int
	CurrentReservations int
	ImageURL            *string
}

// IsFull returns true if the class has no free places left
func (c *SwimClass) IsFull() bool {
	return c.CurrentReservations >= c.MaxCapacity
}

// FreeSpots returns the number of places left in the class
func (c *SwimClass) FreeSpots() int {
	if c.IsFull() {
		return 0
	}
	return c.MaxCapacity - c.CurrentReservations
}

// EndsAt returns the moment the class finishes
func (c *SwimClass) EndsAt() time.Time {
	return c.StartsAt.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// Assignment builds the data copied onto a lane when the class is placed there
func (c *SwimClass) Assignment() ClassAssignment {
	return ClassAssignment{
		ClassType:       c.ClassType,
		InstructorID:    c.InstructorID,
		Capacity:        c.MaxCapacity,
		StartTime:       types.NewTimeString(c.StartsAt),
		DurationMinutes: c.DurationMinutes,
	}
}
