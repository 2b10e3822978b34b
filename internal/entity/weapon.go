package entity

import "image/color"

// Weapon defines how the player's attacks are shaped
type Weapon struct {
	ID       string
	Name     string
	Damage   int
	Cooldown float64 // Seconds between attacks

	// Projectile shape
	Speed    float64
	Lifetime float64 // Range is Speed*Lifetime
	Size     float64
	Color    color.RGBA
}

// Range returns how far the weapon's projectile travels.
func (w Weapon) Range() float64 {
	return w.Speed * w.Lifetime
}

// Shipped weapons in selection order (keys 1, 2, 3)
var (
	Sword = Weapon{
		ID: "sword", Name: "Sword", Damage: 12, Cooldown: 0.35,
		Speed: 420, Lifetime: 0.15, Size: 28,
		Color: color.RGBA{220, 220, 230, 255},
	}
	Bow = Weapon{
		ID: "bow", Name: "Bow", Damage: 8, Cooldown: 0.5,
		Speed: 560, Lifetime: 0.8, Size: 10,
		Color: color.RGBA{200, 160, 90, 255},
	}
	FireStaff = Weapon{
		ID: "fire_staff", Name: "Fire Staff", Damage: 22, Cooldown: 1.0,
		Speed: 300, Lifetime: 1.2, Size: 18,
		Color: color.RGBA{255, 120, 30, 255},
	}
)

// DefaultWeapons returns a fresh loadout
func DefaultWeapons() []Weapon {
	return []Weapon{Sword, Bow, FireStaff}
}
