package build

import (
	"github.com/arthur-debert/scrpatch/pkg/config"
	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/patch"
	"github.com/arthur-debert/scrpatch/pkg/pipeline"
)

// Target names.
const (
	PlayerVariables       = "player_variables"
	ProgressionActions    = "progressionactions"
	InventorySpecial      = "inventory_special"
	VarlistGameOverlay    = "varlist_game_overlay"
	PlayerHungerConfig    = "player_hunger_config"
	NightSpawnPools       = "night_spawn_pools"
	AIPerceptionProfiles  = "ai_perception_profiles"
	AIPresetPool          = "aipresetpool"
	AIDifficultyModifiers = "ai_difficulty_modifiers"
	AISpawnPrioritySystem = "ai_spawn_priority_system"
	DensitiesSettings     = "densitiessettings"
	HealthDefinitions     = "healthdefinitions"
	InputsKeyboard        = "inputs_keyboard"
	BuggyDefenderFuel     = "buggy_defender_fuel_params"
	BuggyMadridersFuel    = "buggy_madriders_fuel_params"
	BuggyWastelandFuel    = "buggy_wasteland_fuel_params"
)

const (
	apexProfilePrefix      = "volatile_apex"
	volatileProfilePrefix  = "volatile_"
	spawnPriorityParamName = "EnablePrioritizationOfSpawners"
)

var (
	apexPacifyNames     = []string{"volatile_apex", "volatile_apex_nightmare"}
	apexExcludeNames    = []string{"volatile_aiden"}
	volatilePacifyNames = []string{
		"volatile_default", "volatile_patrol_nightmare", "volatile_patrol",
		"volatile_nightmare", "volatile_chase", "volatile_chase_nightmare",
		"volatile_sun_immune",
	}
	volatilePacifyExclude = []string{
		"volatile_aiden", "volatile_stinger", "volatile_hive_default",
		"volatile_hive_mq06", "volatile_hive_nightmare",
		"volatile_summoner_default", "volatile_summoner_nightmare",
		"alpha_zombie_default",
	}
	volatileRemapExclude = []string{"volatile_aiden", "volatile_stinger", "volatile_hive_default"}
)

// patchSet collects patches per target.
type patchSet map[string][]patch.Func

func (s patchSet) add(target string, funcs ...patch.Func) {
	s[target] = append(s[target], funcs...)
}

// Plan builds one pipeline per target that has patches, plus every target
// marked always, in manifest order. Each call constructs fresh patches from
// p, so plans never share state.
func Plan(p config.Params) ([]pipeline.Pipeline, error) {
	set, err := patches(p)
	if err != nil {
		return nil, err
	}

	var plan []pipeline.Pipeline
	for _, name := range targets.Names() {
		t := registryTarget(name)
		funcs := set[name]
		if len(funcs) == 0 && !t.Always {
			continue
		}
		plan = append(plan, pipeline.Pipeline{
			Name:     t.Name,
			Template: t.Template,
			Output:   t.Output,
			Patches:  funcs,
		})
	}
	return plan, nil
}

// PlanTarget builds the pipeline for a single target, even when no patch
// applies to it.
func PlanTarget(p config.Params, name string) (pipeline.Pipeline, error) {
	t, err := LookupTarget(name)
	if err != nil {
		return pipeline.Pipeline{}, err
	}
	set, err := patches(p)
	if err != nil {
		return pipeline.Pipeline{}, err
	}
	return pipeline.Pipeline{Name: t.Name, Template: t.Template, Output: t.Output, Patches: set[name]}, nil
}

func registryTarget(name string) Target {
	t, _ := targets.Get(name)
	return t
}

func patches(p config.Params) (patchSet, error) {
	set := patchSet{}

	if err := keyboardPatches(set, p.Vehicle.Binds); err != nil {
		return nil, err
	}
	hungerPatches(set, p.Hunger)
	perceptionPatches(set, p.Volatiles)
	xpPatches(set, p.XP)

	set.add(PlayerVariables,
		patch.MovementSpeed(p.Player.WaterSpeed, p.Player.LandSpeed, p.Player.BoostSpeed),
		patch.ClimbOptions(p.Player.LadderClimbSlow, p.Player.FastClimb),
	)

	tagHealth, err := enemyTagHealth(p.Enemies.TagHealth)
	if err != nil {
		return nil, err
	}
	set.add(AIDifficultyModifiers,
		patch.VolatileDamageBonus(p.Volatiles.DamageBonus.Percents()),
		patch.HumanHealth(p.Enemies.HumanHealth.Percents()),
	)
	set.add(AIDifficultyModifiers, tagHealth...)

	if p.Spawns.SpawnPriority {
		set.add(AISpawnPrioritySystem, patch.SetParamOptional(spawnPriorityParamName, "true"))
	}
	if p.Spawns.AIDensity > patch.DefaultAIDensity {
		set.add(DensitiesSettings, patch.Densities(p.Spawns.AIDensity))
	}

	if p.Volatiles.SpawnPercent != 100 {
		set.add(AIPresetPool, patch.VolatileWeights(p.Volatiles.SpawnPercent, patch.ExteriorNightVolatilePools, p.Volatiles.MinWeight))
	}

	set.add(HealthDefinitions,
		patch.VolatileHealth(p.Volatiles.Health, p.Volatiles.HiveHealth, p.Volatiles.ApexHealth),
		patch.VehicleHealth(p.Vehicle.PickupHealth, p.Vehicle.PickupCTBHealth),
	)

	if p.Night.Enabled {
		set.add(NightSpawnPools, patch.NightPursuitCaps(p.Night.Caps.Pools()))
	}

	flashlightPatches(set, p.Flashlight)
	fuelPatches(set, p.Vehicle)

	return set, nil
}

func keyboardPatches(set patchSet, binds config.Binds) error {
	actions := binds.Actions()
	for _, a := range actions {
		fn, err := patch.BindKey(a[0], a[1])
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "key for %s", a[0]).
				WithDetail("action", a[0]).
				WithDetail("key", a[1])
		}
		set.add(InputsKeyboard, fn)
	}
	for _, a := range actions {
		set.add(InputsKeyboard, patch.DisableLayoutKeybinding(a[0]))
	}
	return nil
}

func hungerPatches(set patchSet, h config.Hunger) {
	if h.Enabled {
		set.add(PlayerHungerConfig, patch.HungerBuckets(h.Costs.Patch()))
		if h.Off() {
			set.add(PlayerVariables, patch.SetHungerExtras(patch.HungerExtras{}))
		} else {
			set.add(PlayerVariables, patch.SetHungerRates(patch.HungerExtras{
				DecreaseSpeed: h.DecreaseSpeed,
				RestingCost:   h.RestingCost,
				RevivedCost:   h.RevivedCost,
				MulDash:       h.MulDash,
				MulFury:       h.MulFury,
			}))
		}
	}
	if h.RestoreFull {
		set.add(PlayerVariables, patch.RestoreHungerToFull())
	}
}

// perceptionPatches handles apex profiles first. When apex profiles are
// rewritten on their own, the general volatile remap leaves them alone so
// no block is remapped twice.
func perceptionPatches(set patchSet, v config.Volatiles) {
	apexHandled := false
	if v.AlphaEnabled {
		switch v.AlphaMode {
		case patch.ModeVanilla:
		case patch.ModePacify:
			set.add(AIPerceptionProfiles, patch.DeletePerceptionProfiles(patch.Selector{
				Names:        apexPacifyNames,
				ExcludeNames: apexExcludeNames,
			}))
			apexHandled = true
		case patch.ModeHighToLow, patch.ModeHighToDefault, patch.ModeAllToResting:
			set.add(AIPerceptionProfiles, patch.RemapPerceptionProfiles(patch.Remap{
				Selector: patch.Selector{Prefixes: []string{apexProfilePrefix}, ExcludeNames: apexExcludeNames},
				Mode:     v.AlphaMode,
				Resting:  patch.DefaultRestingProfile,
			}))
			apexHandled = true
		}
	}

	if !v.Enabled {
		return
	}
	switch v.Mode {
	case patch.ModeVanilla:
	case patch.ModePacify:
		set.add(AIPerceptionProfiles, patch.DeletePerceptionProfiles(patch.Selector{
			Names:        volatilePacifyNames,
			ExcludeNames: volatilePacifyExclude,
		}))
	case patch.ModeHighToLow, patch.ModeHighToDefault, patch.ModeAllToResting:
		sel := patch.Selector{Prefixes: []string{volatileProfilePrefix}, ExcludeNames: volatileRemapExclude}
		if apexHandled {
			sel.ExcludeContains = []string{apexProfilePrefix}
		}
		set.add(AIPerceptionProfiles, patch.RemapPerceptionProfiles(patch.Remap{
			Selector: sel,
			Mode:     v.Mode,
			Resting:  patch.DefaultRestingProfile,
		}))
	}
}

func xpPatches(set patchSet, xp config.XP) {
	if xp.Mode == config.ModeOpenWorld {
		set.add(PlayerVariables, patch.OpenWorldXP(xp.OpenWorldMultiplier))
	} else {
		if xp.LegendXPLoss != 100 {
			set.add(PlayerVariables, patch.LegendXPLoss(xp.LegendXPLoss))
		}
		penalty := patch.LegendPenaltyDefaults()
		if xp.LegendPenalty != 1.0 {
			penalty = patch.LegendPenaltyUniversal(xp.LegendPenalty)
		}
		set.add(ProgressionActions,
			patch.LegendBonus(xp.LegendEasyNormal, xp.LegendHard, xp.LegendNightmare),
			penalty,
			patch.NGPlusMultiplier(xp.NGPlusMultiplier),
			patch.CoopMultiplier(xp.CoopMultiplier),
			patch.QuestLegendPoints(xp.QuestLegendPoints),
		)
	}

	if xp.DeathPenaltyOverride {
		set.add(PlayerVariables, patch.DeathPenaltyLevels(xp.DeathPenaltyPercent))
	}
}

// enemyTagHealth returns one patch per configured tag that differs from
// vanilla, in EnemyTags order.
func enemyTagHealth(tags map[string]config.Difficulty) ([]patch.Func, error) {
	byTag := make(map[string]patch.DifficultyPercents, len(tags))
	for name, d := range tags {
		tag, ok := patch.LookupEnemyTag(name)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigValid, "unknown enemy tag %q", name).
				WithDetail("tag", name)
		}
		byTag[tag] = d.Percents()
	}

	var funcs []patch.Func
	for _, tag := range patch.EnemyTags {
		pct, ok := byTag[tag]
		if !ok || pct == patch.Uniform(100) {
			continue
		}
		funcs = append(funcs, patch.EnemyTagHealth(tag, pct))
	}
	return funcs, nil
}

func flashlightPatches(set patchSet, f config.Flashlight) {
	if f.Enabled {
		set.add(VarlistGameOverlay,
			patch.VarVec3("v_flashlight_pp_color", f.Color.R, f.Color.G, f.Color.B),
			patch.VarVec3("v_flashlight_pp_uv_color", f.UVColor.R, f.UVColor.G, f.UVColor.B),
		)
		set.add(PlayerVariables, patch.UnlimitedNightmareFlashlight(f.NightmareUnlimited))
	}
	set.add(InventorySpecial, patch.FlashlightLevels(f.Levels())...)
}

func fuelPatches(set patchSet, v config.Vehicle) {
	var funcs []patch.Func
	if v.FuelUsage != 100 {
		funcs = append(funcs, patch.ParamFloatMul("fuel_usage_base", float64(v.FuelUsage)/100))
	}
	if v.FuelMax != 100 {
		funcs = append(funcs, patch.ParamFloatMul("fuel_max_amount", float64(v.FuelMax)/100))
	}
	for _, target := range []string{BuggyDefenderFuel, BuggyMadridersFuel, BuggyWastelandFuel} {
		set.add(target, funcs...)
	}
}
