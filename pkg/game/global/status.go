// Package global holds the game-wide vocabulary shared by map mode and its indicators.
package global

// Status is an active status effect category
type Status int

// Status constants
const (
	StatusInvalid Status = iota - 1
	StatusPhysicalAttack
	StatusMagicalAttack
	StatusPhysicalDefense
	StatusMagicalDefense
	StatusStamina
	StatusEvade
	StatusHPRegen
	StatusSPRegen
	StatusParalysis
	StatusTotal
)

// AllStatuses returns every valid status for iteration
func AllStatuses() []Status {
	statuses := make([]Status, 0, int(StatusTotal))
	for s := StatusPhysicalAttack; s < StatusTotal; s++ {
		statuses = append(statuses, s)
	}
	return statuses
}

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusPhysicalAttack:
		return "physical_attack"
	case StatusMagicalAttack:
		return "magical_attack"
	case StatusPhysicalDefense:
		return "physical_defense"
	case StatusMagicalDefense:
		return "magical_defense"
	case StatusStamina:
		return "stamina"
	case StatusEvade:
		return "evade"
	case StatusHPRegen:
		return "hp_regen"
	case StatusSPRegen:
		return "sp_regen"
	case StatusParalysis:
		return "paralysis"
	default:
		return "invalid"
	}
}

// IsValid returns true for a real status
func (s Status) IsValid() bool {
	return s >= StatusPhysicalAttack && s < StatusTotal
}

// Intensity is the strength of a status, ordered from most negative to most positive
type Intensity int

// Intensity constants
const (
	IntensityNegExtreme Intensity = iota - 4
	IntensityNegGreater
	IntensityNegModerate
	IntensityNegLesser
	IntensityNeutral
	IntensityPosLesser
	IntensityPosModerate
	IntensityPosGreater
	IntensityPosExtreme
)

// IsValid returns true when the intensity is inside the known range
func (i Intensity) IsValid() bool {
	return i >= IntensityNegExtreme && i <= IntensityPosExtreme
}

// String returns the string representation of an intensity
func (i Intensity) String() string {
	switch i {
	case IntensityNegExtreme:
		return "neg_extreme"
	case IntensityNegGreater:
		return "neg_greater"
	case IntensityNegModerate:
		return "neg_moderate"
	case IntensityNegLesser:
		return "neg_lesser"
	case IntensityNeutral:
		return "neutral"
	case IntensityPosLesser:
		return "pos_lesser"
	case IntensityPosModerate:
		return "pos_moderate"
	case IntensityPosGreater:
		return "pos_greater"
	case IntensityPosExtreme:
		return "pos_extreme"
	default:
		return "invalid"
	}
}
