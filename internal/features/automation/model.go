package automation

import "go-agency/internal/features/agent"

// AutomationRule is a declarative description of a trigger and the task it
// would produce. Rules are reference data for the UI; the engine does not
// evaluate them against tasks or time. Enabled is the only mutable field.
type AutomationRule struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	TaskType    agent.TaskType   `json:"taskType"`
	Action      agent.ActionType `json:"action"`
	Enabled     bool             `json:"enabled"`
	OffsetDays  int              `json:"offsetDays"`
	Icon        string           `json:"icon"`
}

// defaultRules is the fixed rule catalog loaded at startup.
var defaultRules = []AutomationRule{
	{
		ID:          1,
		Name:        "Dogum Gunu Kutlamasi",
		Description: "Musterinin dogum gununden 1 gun once kutlama SMS'i planla",
		TaskType:    agent.TypeBirthday,
		Action:      agent.ActionSMS,
		Enabled:     true,
		OffsetDays:  -1,
		Icon:        "cake",
	},
	{
		ID:          2,
		Name:        "Ozel Gun Mesaji",
		Description: "Resmi ve dini bayramlarda tum musterilere kutlama mesaji gonder",
		TaskType:    agent.TypeOccasion,
		Action:      agent.ActionEmail,
		Enabled:     true,
		OffsetDays:  0,
		Icon:        "gift",
	},
	{
		ID:          3,
		Name:        "Hasar Sonrasi Anket",
		Description: "Hasar dosyasi kapandiktan 7 gun sonra memnuniyet anketi gonder",
		TaskType:    agent.TypeSurvey,
		Action:      agent.ActionSurveySend,
		Enabled:     true,
		OffsetDays:  7,
		Icon:        "clipboard-list",
	},
	{
		ID:          4,
		Name:        "Capraz Satis Onerisi",
		Description: "Tek bransli musterilere police bitiminden 30 gun once ek urun teklifi olustur",
		TaskType:    agent.TypeCrossSell,
		Action:      agent.ActionOffer,
		Enabled:     false,
		OffsetDays:  -30,
		Icon:        "trending-up",
	},
	{
		ID:          5,
		Name:        "Aile TSS Taramasi",
		Description: "TSS'li musterilerin aile bireyleri icin 90 gunde bir teklif gorusmesi planla",
		TaskType:    agent.TypeFamilyTSS,
		Action:      agent.ActionCall,
		Enabled:     false,
		OffsetDays:  90,
		Icon:        "users",
	},
}
