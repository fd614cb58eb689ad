package config

// Balance holds every tunable number in the simulation. Tests pin or
// zero the probabilistic knobs to make outcomes deterministic.
type Balance struct {
	StartingFunding float64 `yaml:"startingFunding" json:"startingFunding"`

	MaxScientists     int `yaml:"maxScientists" json:"maxScientists"`
	MaxWorkers        int `yaml:"maxWorkers" json:"maxWorkers"`
	MaxEquipmentSlots int `yaml:"maxEquipmentSlots" json:"maxEquipmentSlots"`

	// Experiments
	ExperimentFundingPerLevel  float64 `yaml:"experimentFundingPerLevel" json:"experimentFundingPerLevel"`
	ExperimentResearchPerLevel float64 `yaml:"experimentResearchPerLevel" json:"experimentResearchPerLevel"`
	FailureFundingFraction     float64 `yaml:"failureFundingFraction" json:"failureFundingFraction"`
	FailureResearchFraction    float64 `yaml:"failureResearchFraction" json:"failureResearchFraction"`
	ExhaustionChance           float64 `yaml:"exhaustionChance" json:"exhaustionChance"`
	ExhaustionRecoveryTicks    int     `yaml:"exhaustionRecoveryTicks" json:"exhaustionRecoveryTicks"`

	// Academia
	StressTickFactor     float64 `yaml:"stressTickFactor" json:"stressTickFactor"`
	HopeDecayPerTick     float64 `yaml:"hopeDecayPerTick" json:"hopeDecayPerTick"`
	CaffeineGainPerTick  float64 `yaml:"caffeineGainPerTick" json:"caffeineGainPerTick"`
	AcademiaOutputFactor float64 `yaml:"academiaOutputFactor" json:"academiaOutputFactor"`
	BurnoutWarnChance    float64 `yaml:"burnoutWarnChance" json:"burnoutWarnChance"`
	AttritionChance      float64 `yaml:"attritionChance" json:"attritionChance"`
	StipendPeriodTicks   int     `yaml:"stipendPeriodTicks" json:"stipendPeriodTicks"`

	// Grants
	GrantSpawnChance       float64 `yaml:"grantSpawnChance" json:"grantSpawnChance"`
	MaxOpportunities       int     `yaml:"maxOpportunities" json:"maxOpportunities"`
	OpportunityMinDuration int     `yaml:"opportunityMinDuration" json:"opportunityMinDuration"`
	OpportunityMaxDuration int     `yaml:"opportunityMaxDuration" json:"opportunityMaxDuration"`
	NoWriterWorkTime       int     `yaml:"noWriterWorkTime" json:"noWriterWorkTime"`

	// Crises
	CrisisWindowMinTicks int     `yaml:"crisisWindowMinTicks" json:"crisisWindowMinTicks"`
	CrisisWindowMaxTicks int     `yaml:"crisisWindowMaxTicks" json:"crisisWindowMaxTicks"`
	CrisisChance         float64 `yaml:"crisisChance" json:"crisisChance"`

	// Settlement
	ScientistSalary           float64 `yaml:"scientistSalary" json:"scientistSalary"`
	EquipmentUpkeep           float64 `yaml:"equipmentUpkeep" json:"equipmentUpkeep"`
	WorkerUpkeep              float64 `yaml:"workerUpkeep" json:"workerUpkeep"`
	PassiveIncomePerDiscovery float64 `yaml:"passiveIncomePerDiscovery" json:"passiveIncomePerDiscovery"`
}

func DefaultBalance() Balance {
	return Balance{
		StartingFunding: 50000,

		MaxScientists:     10,
		MaxWorkers:        20,
		MaxEquipmentSlots: 7,

		ExperimentFundingPerLevel:  2000,
		ExperimentResearchPerLevel: 15,
		FailureFundingFraction:     0.2,
		FailureResearchFraction:    0.3,
		ExhaustionChance:           0.001,
		ExhaustionRecoveryTicks:    60,

		StressTickFactor:     0.5,
		HopeDecayPerTick:     0.1,
		CaffeineGainPerTick:  0.05,
		AcademiaOutputFactor: 0.5,
		BurnoutWarnChance:    0.02,
		AttritionChance:      0.1,
		StipendPeriodTicks:   30,

		GrantSpawnChance:       0.03,
		MaxOpportunities:       4,
		OpportunityMinDuration: 60,
		OpportunityMaxDuration: 120,
		NoWriterWorkTime:       45,

		CrisisWindowMinTicks: 45,
		CrisisWindowMaxTicks: 90,
		CrisisChance:         0.3,

		ScientistSalary:           150,
		EquipmentUpkeep:           75,
		WorkerUpkeep:              110,
		PassiveIncomePerDiscovery: 100,
	}
}
