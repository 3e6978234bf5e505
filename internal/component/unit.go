// internal/component/unit.go
package component

import "grid-tactics/pkg/utils"

// Unit — боевая единица: инициатива, здоровье, скорость и дальности атаки
type Unit struct {
	Initiative    float64 // Текущая инициатива, [0, MaxInitiative]
	MaxInitiative float64
	HP            int // Текущее здоровье, [0, MaxHP]
	MaxHP         int
	Speed         int   // Бюджет передвижения за ход
	Ranges        []int // Точные манхэттенские дистанции атаки
	Attack        int
	Armor         int  // Хранится, но в формуле урона пока не участвует
	Defeated      bool // HP дошло до 0
}

// NewUnit builds a unit with initiative and HP clamped into range.
func NewUnit(maxInitiative, initiative float64, maxHP, hp, speed int, ranges []int, attack, armor int) *Unit {
	if maxInitiative < 0 {
		maxInitiative = 0
	}
	if maxHP < 0 {
		maxHP = 0
	}
	if speed < 0 {
		speed = 0
	}
	u := &Unit{
		Initiative:    utils.Clamp(initiative, 0, maxInitiative),
		MaxInitiative: maxInitiative,
		HP:            utils.ClampInt(hp, 0, maxHP),
		MaxHP:         maxHP,
		Speed:         speed,
		Ranges:        append([]int(nil), ranges...),
		Attack:        attack,
		Armor:         armor,
	}
	u.Defeated = u.HP == 0
	return u
}

// IsReady reports whether the initiative bar is full.
func (u *Unit) IsReady() bool {
	return !u.Defeated && u.Initiative >= u.MaxInitiative
}

// Progress is the filled share of the initiative bar in [0, 1].
func (u *Unit) Progress() float64 {
	if u.MaxInitiative <= 0 {
		return 0
	}
	return utils.Clamp(u.Initiative/u.MaxInitiative, 0, 1)
}

// Charge advances initiative by amount, capped at MaxInitiative.
func (u *Unit) Charge(amount float64) {
	if u.Defeated {
		return
	}
	u.Initiative = utils.Clamp(u.Initiative+amount, 0, u.MaxInitiative)
}

// ResetInitiative sends the unit back to charging after it acted.
func (u *Unit) ResetInitiative() {
	u.Initiative = 0
}

// TakeDamage subtracts amount from HP, saturating at zero. Returns true when
// this hit defeated the unit.
func (u *Unit) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	u.HP -= amount
	if u.HP <= 0 {
		u.HP = 0
		if !u.Defeated {
			u.Defeated = true
			return true
		}
	}
	return false
}
