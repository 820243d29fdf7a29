package domain

// Scenario names one loadable level or context for which strategies are initialized.
type Scenario string

func (s Scenario) String() string { return string(s) }

// Well-known item identifiers used as fixed substitution targets.
// These are policy: strategies special-case them by value.
var (
	// Treasure hunt
	ItemGoldIdol = MustParseItemID("4b0def3b-7378-494d-b885-92c334f2f8cb")
	ItemBust     = MustParseItemID("a6bcac8b-9772-424e-b2c4-3bdb4da0e349")

	// No-items world
	ItemNoItemsPistol = MustParseItemID("1e11fbea-cd51-48bf-8316-a050772d6135") // Hackl 9S
	ItemNoItemsCoin   = MustParseItemID("dda002e9-02b1-4208-82a5-cf059f3c79cf")

	// Grenades
	ItemFlashGrenade = MustParseItemID("042fae7b-fe9e-4a83-ac7b-5c914a71b2ca")
	ItemFragGrenade  = MustParseItemID("3f9cf03f-b84f-4419-b831-4704cff9775c")

	// Hard NPC tiers
	ItemHardShotgun = MustParseItemID("901a3b51-51a0-4236-bdf2-23d20696b358")
	ItemHardRifle   = MustParseItemID("d8aa6eba-0cb7-4ed4-ab99-975f2793d731")
	ItemHardSniper  = MustParseItemID("43d15bea-d282-4a91-b625-8b7ba85c0ad5")
	ItemHardPistol  = MustParseItemID("304fd49f-0624-4691-8506-149a4b16808e")
	ItemHardSMG     = MustParseItemID("e206ed81-0559-4289-9fec-e6a3e9d4ee7c")

	// Sleepy and chain reaction NPCs
	ItemSedativeCoin  = MustParseItemID("6c3854f6-dbe0-410c-bd01-ddc35b402d0c")
	ItemOctaneBooster = MustParseItemID("c82fefa7-febe-46c8-90ec-c945fbef0cb4")
	ItemChainShotgun1 = MustParseItemID("0af419f5-e6d3-488d-b133-6ce0964b0770")
	ItemChainShotgun2 = MustParseItemID("d5728a0f-fe8d-4e2d-9350-03cf4243c98e")
	ItemChainRifle1   = MustParseItemID("6e4afb04-417e-4cfc-aaa2-43f3ecca9037")
	ItemChainRifle2   = MustParseItemID("e206ed81-0559-4289-9fec-e6a3e9d4ee7c")
	ItemChainSniper   = MustParseItemID("370580fc-7fcf-47f8-b994-cebd279f69f9")
)
