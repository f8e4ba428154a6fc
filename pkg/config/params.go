package config

import (
	"github.com/arthur-debert/scrpatch/pkg/patch"
)

// XP modes.
const (
	ModeOpenWorld = "openworld"
	ModeLegend    = "legend"
)

// Params is the full set of build parameters.
type Params struct {
	XP         XP         `koanf:"xp" toml:"xp"`
	Hunger     Hunger     `koanf:"hunger" toml:"hunger"`
	Player     Player     `koanf:"player" toml:"player"`
	Volatiles  Volatiles  `koanf:"volatiles" toml:"volatiles"`
	Enemies    Enemies    `koanf:"enemies" toml:"enemies"`
	Night      Night      `koanf:"night" toml:"night"`
	Flashlight Flashlight `koanf:"flashlight" toml:"flashlight"`
	Vehicle    Vehicle    `koanf:"vehicle" toml:"vehicle"`
	Spawns     Spawns     `koanf:"spawns" toml:"spawns"`
}

// XP controls experience and legend progression.
type XP struct {
	Mode                 string  `koanf:"mode" toml:"mode" validate:"oneof=openworld legend"`
	OpenWorldMultiplier  float64 `koanf:"openworld_multiplier" toml:"openworld_multiplier" validate:"gt=0"`
	LegendEasyNormal     float64 `koanf:"legend_easy_normal" toml:"legend_easy_normal" validate:"gt=0"`
	LegendHard           float64 `koanf:"legend_hard" toml:"legend_hard" validate:"gt=0"`
	LegendNightmare      float64 `koanf:"legend_nightmare" toml:"legend_nightmare" validate:"gt=0"`
	LegendPenalty        float64 `koanf:"legend_penalty" toml:"legend_penalty" validate:"gte=0"`
	NGPlusMultiplier     float64 `koanf:"ngplus_multiplier" toml:"ngplus_multiplier" validate:"gte=0"`
	CoopMultiplier       float64 `koanf:"coop_multiplier" toml:"coop_multiplier" validate:"gte=0"`
	QuestLegendPoints    float64 `koanf:"quest_legend_points" toml:"quest_legend_points" validate:"gte=0"`
	LegendXPLoss         int     `koanf:"legend_xp_loss" toml:"legend_xp_loss" validate:"gte=0,lte=1000"`
	DeathPenaltyOverride bool    `koanf:"death_penalty_override" toml:"death_penalty_override"`
	DeathPenaltyPercent  int     `koanf:"death_penalty_percent" toml:"death_penalty_percent" validate:"gte=0,lte=1000"`
}

// Hunger controls the hunger system.
type Hunger struct {
	Enabled       bool        `koanf:"enabled" toml:"enabled"`
	DecreaseSpeed float64     `koanf:"decrease_speed" toml:"decrease_speed" validate:"gte=0"`
	MulDash       float64     `koanf:"mul_dash" toml:"mul_dash" validate:"gte=0"`
	MulFury       float64     `koanf:"mul_fury" toml:"mul_fury" validate:"gte=0"`
	RestingCost   float64     `koanf:"resting_cost" toml:"resting_cost"`
	RevivedCost   float64     `koanf:"revived_cost" toml:"revived_cost"`
	RestoreFull   bool        `koanf:"restore_full" toml:"restore_full"`
	Costs         HungerCosts `koanf:"costs" toml:"costs"`
}

// HungerCosts are the replacement costs of the vanilla ActionCost buckets.
type HungerCosts struct {
	Cost05 float64 `koanf:"cost_05" toml:"cost_05" validate:"gte=0"`
	Cost10 float64 `koanf:"cost_10" toml:"cost_10" validate:"gte=0"`
	Cost20 float64 `koanf:"cost_20" toml:"cost_20" validate:"gte=0"`
	Cost30 float64 `koanf:"cost_30" toml:"cost_30" validate:"gte=0"`
	Cost40 float64 `koanf:"cost_40" toml:"cost_40" validate:"gte=0"`
}

// Patch converts the costs for the patch library.
func (c HungerCosts) Patch() patch.HungerCosts {
	return patch.HungerCosts{Cost05: c.Cost05, Cost10: c.Cost10, Cost20: c.Cost20, Cost30: c.Cost30, Cost40: c.Cost40}
}

// Off reports whether every hunger cost and speed is zero, which disables
// hunger entirely.
func (h Hunger) Off() bool {
	return h.DecreaseSpeed == 0 && h.MulDash == 0 && h.MulFury == 0 &&
		h.RestingCost == 0 && h.RevivedCost == 0 &&
		h.Costs == HungerCosts{}
}

// Player controls movement. Speeds are bonus percentages.
type Player struct {
	WaterSpeed      int  `koanf:"water_speed" toml:"water_speed" validate:"gte=-90,lte=500"`
	LandSpeed       int  `koanf:"land_speed" toml:"land_speed" validate:"gte=-90,lte=500"`
	BoostSpeed      int  `koanf:"boost_speed" toml:"boost_speed" validate:"gte=-90,lte=500"`
	LadderClimbSlow bool `koanf:"ladder_climb_slow" toml:"ladder_climb_slow"`
	FastClimb       bool `koanf:"fast_climb" toml:"fast_climb"`
}

// Difficulty is one percentage per difficulty.
type Difficulty struct {
	Easy      int `koanf:"easy" toml:"easy" validate:"gte=0,lte=1000"`
	Normal    int `koanf:"normal" toml:"normal" validate:"gte=0,lte=1000"`
	Hard      int `koanf:"hard" toml:"hard" validate:"gte=0,lte=1000"`
	Nightmare int `koanf:"nightmare" toml:"nightmare" validate:"gte=0,lte=1000"`
}

// Percents converts d for the patch library.
func (d Difficulty) Percents() patch.DifficultyPercents {
	return patch.DifficultyPercents{Easy: d.Easy, Normal: d.Normal, Hard: d.Hard, Nightmare: d.Nightmare}
}

// Volatiles controls volatile behaviour, spawns and health.
type Volatiles struct {
	Enabled      bool                 `koanf:"enabled" toml:"enabled"`
	Mode         patch.PerceptionMode `koanf:"mode" toml:"mode"`
	AlphaEnabled bool                 `koanf:"alpha_enabled" toml:"alpha_enabled"`
	AlphaMode    patch.PerceptionMode `koanf:"alpha_mode" toml:"alpha_mode"`
	SpawnPercent int                  `koanf:"spawn_percent" toml:"spawn_percent" validate:"gte=0,lte=1000"`
	MinWeight    int                  `koanf:"min_weight" toml:"min_weight" validate:"gte=0"`
	DamageBonus  Difficulty           `koanf:"damage_bonus" toml:"damage_bonus"`
	Health       int                  `koanf:"volatile_health" toml:"volatile_health" validate:"gte=1,lte=1000"`
	HiveHealth   int                  `koanf:"hive_health" toml:"hive_health" validate:"gte=1,lte=1000"`
	ApexHealth   int                  `koanf:"apex_health" toml:"apex_health" validate:"gte=1,lte=1000"`
}

// Enemies controls human and per-tag enemy health, percent of vanilla.
type Enemies struct {
	HumanHealth Difficulty            `koanf:"human_health" toml:"human_health"`
	TagHealth   map[string]Difficulty `koanf:"tag_health" toml:"tag_health,omitempty" validate:"dive,keys,enemytag,endkeys"`
}

// Night controls night pursuit caps.
type Night struct {
	Enabled bool      `koanf:"enabled" toml:"enabled"`
	Caps    NightCaps `koanf:"caps" toml:"caps"`
}

// NightCaps are the MaxNoZombiesInPursuit values. Some values are shared
// between the Easy and regular aggression levels.
type NightCaps struct {
	BeginL1        int `koanf:"begin_l1" toml:"begin_l1" validate:"gte=0"`
	BeginL2SlumsL1 int `koanf:"begin_l2_slums_l1" toml:"begin_l2_slums_l1" validate:"gte=0"`
	BeginL3        int `koanf:"begin_l3" toml:"begin_l3" validate:"gte=0"`
	BeginL4SlumsL3 int `koanf:"begin_l4_slums_l3" toml:"begin_l4_slums_l3" validate:"gte=0"`
	SlumsL2        int `koanf:"slums_l2" toml:"slums_l2" validate:"gte=0"`
	SlumsL4        int `koanf:"slums_l4" toml:"slums_l4" validate:"gte=0"`
	OldTownL1      int `koanf:"old_town_l1" toml:"old_town_l1" validate:"gte=0"`
	OldTownL2      int `koanf:"old_town_l2" toml:"old_town_l2" validate:"gte=0"`
	OldTownL3      int `koanf:"old_town_l3" toml:"old_town_l3" validate:"gte=0"`
	OldTownL4      int `koanf:"old_town_l4" toml:"old_town_l4" validate:"gte=0"`
}

// Pools maps pool names to caps.
func (c NightCaps) Pools() map[string]int {
	return map[string]int{
		"Night_Aggresion_Level_1_Easy":                   c.BeginL1,
		"Night_Aggresion_Level_2_Easy":                   c.BeginL2SlumsL1,
		"Night_Aggresion_Level_3_Easy":                   c.BeginL3,
		"Night_Aggresion_Level_4_Easy":                   c.BeginL4SlumsL3,
		"Night_Aggresion_Level_1":                        c.BeginL2SlumsL1,
		"Night_Aggresion_Level_2":                        c.SlumsL2,
		"Night_Aggresion_Level_3":                        c.BeginL4SlumsL3,
		"Night_Aggresion_Level_4":                        c.SlumsL4,
		patch.OldTownPrefix + "Night_Aggresion_Level_1": c.OldTownL1,
		patch.OldTownPrefix + "Night_Aggresion_Level_2": c.OldTownL2,
		patch.OldTownPrefix + "Night_Aggresion_Level_3": c.OldTownL3,
		patch.OldTownPrefix + "Night_Aggresion_Level_4": c.OldTownL4,
	}
}

// Flashlight controls colours and UV levels.
type Flashlight struct {
	Enabled            bool            `koanf:"enabled" toml:"enabled"`
	NightmareUnlimited bool            `koanf:"nightmare_unlimited" toml:"nightmare_unlimited"`
	Color              RGB             `koanf:"color" toml:"color"`
	UVColor            RGB             `koanf:"uv_color" toml:"uv_color"`
	UV1                FlashlightLevel `koanf:"uv1" toml:"uv1"`
	UV2                FlashlightLevel `koanf:"uv2" toml:"uv2"`
	UV3                FlashlightLevel `koanf:"uv3" toml:"uv3"`
	UV4                FlashlightLevel `koanf:"uv4" toml:"uv4"`
	UV5                FlashlightLevel `koanf:"uv5" toml:"uv5"`
}

// Levels returns the five UV levels for the patch library.
func (f Flashlight) Levels() [patch.FlashlightLevelCount]patch.Flashlight {
	return [patch.FlashlightLevelCount]patch.Flashlight{
		f.UV1.Patch(), f.UV2.Patch(), f.UV3.Patch(), f.UV4.Patch(), f.UV5.Patch(),
	}
}

// RGB is a colour with 0..1 channels.
type RGB struct {
	R float64 `koanf:"r" toml:"r" validate:"gte=0,lte=1"`
	G float64 `koanf:"g" toml:"g" validate:"gte=0,lte=1"`
	B float64 `koanf:"b" toml:"b" validate:"gte=0,lte=1"`
}

// FlashlightLevel is one UV flashlight preset.
type FlashlightLevel struct {
	Drain  float64 `koanf:"drain" toml:"drain" validate:"gte=0"`
	Energy float64 `koanf:"energy" toml:"energy" validate:"gt=0"`
	Regen  float64 `koanf:"regen" toml:"regen" validate:"gte=0"`
}

// Patch converts l for the patch library.
func (l FlashlightLevel) Patch() patch.Flashlight {
	return patch.Flashlight{Drain: l.Drain, MaxEnergy: l.Energy, RegenDelay: l.Regen}
}

// Vehicle controls fuel, vehicle health and driving keys.
type Vehicle struct {
	FuelUsage       int   `koanf:"fuel_usage" toml:"fuel_usage" validate:"gt=0,lte=1000"`
	FuelMax         int   `koanf:"fuel_max" toml:"fuel_max" validate:"gt=0,lte=1000"`
	PickupHealth    int   `koanf:"pickup_health" toml:"pickup_health" validate:"gt=0,lte=1000"`
	PickupCTBHealth int   `koanf:"pickup_ctb_health" toml:"pickup_ctb_health" validate:"gt=0,lte=1000"`
	Binds           Binds `koanf:"binds" toml:"binds"`
}

// Binds are the driving key names, resolved with keys.Token.
type Binds struct {
	Throttle  string `koanf:"throttle" toml:"throttle" validate:"required"`
	Brake     string `koanf:"brake" toml:"brake" validate:"required"`
	Left      string `koanf:"left" toml:"left" validate:"required"`
	Right     string `koanf:"right" toml:"right" validate:"required"`
	Handbrake string `koanf:"handbrake" toml:"handbrake" validate:"required"`
	Leave     string `koanf:"leave" toml:"leave" validate:"required"`
	Camera    string `koanf:"camera" toml:"camera" validate:"required"`
	Lights    string `koanf:"lights" toml:"lights" validate:"required"`
	Lookback  string `koanf:"lookback" toml:"lookback" validate:"required"`
	Horn      string `koanf:"horn" toml:"horn" validate:"required"`
	Redirect  string `koanf:"redirect" toml:"redirect" validate:"required"`
	UV        string `koanf:"uv" toml:"uv" validate:"required"`
}

// Actions pairs each engine action with its configured key, in the order
// the keybinding patches run.
func (b Binds) Actions() [][2]string {
	return [][2]string{
		{"_ACTION_THROTTLE", b.Throttle},
		{"_ACTION_BRAKE", b.Brake},
		{"_ACTION_TURN_VEHICLE_LEFT", b.Left},
		{"_ACTION_TURN_VEHICLE_RIGHT", b.Right},
		{"_ACTION_HANDBRAKE", b.Handbrake},
		{"_ACTION_VEHICLE_LEAVE", b.Leave},
		{"_ACTION_VEHICLE_CHANGE_CAMERA", b.Camera},
		{"_ACTION_CAR_LIGHTS_TOGGLE", b.Lights},
		{"_ACTION_VEHICLE_LOOKBACK", b.Lookback},
		{"_ACTION_HORN", b.Horn},
		{"_ACTION_VEHICLE_REDIRECT_TO_SAFE_HOUSE", b.Redirect},
		{"_ACTION_CAR_LIGHTS_UV", b.UV},
	}
}

// Spawns controls global AI density and spawner prioritisation.
type Spawns struct {
	AIDensity     int  `koanf:"ai_density" toml:"ai_density" validate:"gte=0,lte=600"`
	SpawnPriority bool `koanf:"spawn_priority" toml:"spawn_priority"`
}
