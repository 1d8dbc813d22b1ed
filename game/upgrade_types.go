package game

// Upgrade identifies an upgrade choice offered on level-up
type Upgrade int

const (
	// UpgradeMobility increases the player's movement speed
	UpgradeMobility Upgrade = iota

	// UpgradeFirepower increases projectile speed and charge regeneration together
	UpgradeFirepower
)

// Aliases matching the two buttons of the upgrade screen
const (
	UpgradeA = UpgradeMobility
	UpgradeB = UpgradeFirepower
)

func (u Upgrade) String() string {
	switch u {
	case UpgradeMobility:
		return "mobility"
	case UpgradeFirepower:
		return "firepower"
	default:
		return "unknown"
	}
}

// Valid reports whether u names a known upgrade
func (u Upgrade) Valid() bool {
	return u == UpgradeMobility || u == UpgradeFirepower
}

// UpgradeInfo describes an upgrade for the upgrade screen
type UpgradeInfo struct {
	Upgrade Upgrade
	Title   string
	Detail  string
}

// GetUpgradeInfo returns the display text for an upgrade
func GetUpgradeInfo(u Upgrade) UpgradeInfo {
	switch u {
	case UpgradeFirepower:
		return UpgradeInfo{
			Upgrade: UpgradeFirepower,
			Title:   "Firepower",
			Detail:  "Faster shots, faster charge",
		}
	default:
		return UpgradeInfo{
			Upgrade: UpgradeMobility,
			Title:   "Mobility",
			Detail:  "Faster movement",
		}
	}
}

// Apply grants the upgrade's bonuses to the player
func (c UpgradeConfig) Apply(u Upgrade, p *Player) {
	switch u {
	case UpgradeMobility:
		p.Speed += c.SpeedBonus
	case UpgradeFirepower:
		p.ProjectileSpeed += c.ProjectileSpeedBonus
		p.ChargeRate += c.ChargeRateBonus
	}
}
