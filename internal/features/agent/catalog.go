package agent

// Static pools the generator draws from. Content mirrors what the agency
// UI shows; behavior never depends on the concrete strings.

// timeSlots are the half-hour appointment slots between 09:00 and 16:00.
var timeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00",
}

// typeDurations is the task duration in minutes per task type.
var typeDurations = map[TaskType]int{
	TypeBirthday:  10,
	TypeOccasion:  10,
	TypeSurvey:    15,
	TypeCrossSell: 30,
	TypeFamilyTSS: 30,
}

// typeActions lists the actions permitted for each task type.
var typeActions = map[TaskType][]ActionType{
	TypeBirthday:  {ActionSMS, ActionCall},
	TypeOccasion:  {ActionSMS, ActionEmail},
	TypeSurvey:    {ActionSurveySend, ActionCall},
	TypeCrossSell: {ActionOffer, ActionCall, ActionEmail},
	TypeFamilyTSS: {ActionOffer, ActionCall},
}

// typeBasePriority seeds the priority draw; the generator bumps it one
// level for a fraction of tasks.
var typeBasePriority = map[TaskType]TaskPriority{
	TypeBirthday:  PriorityNormal,
	TypeOccasion:  PriorityLow,
	TypeSurvey:    PriorityNormal,
	TypeCrossSell: PriorityHigh,
	TypeFamilyTSS: PriorityHigh,
}

// typeTitles are the short labels shown in task lists.
var typeTitles = map[TaskType][]string{
	TypeBirthday: {
		"Dogum gunu kutlama mesaji",
		"Dogum gunu tebrik aramasi",
		"Dogum gununde ozel indirim bilgisi",
	},
	TypeOccasion: {
		"Bayram kutlama mesaji",
		"Yeni yil kutlamasi",
		"Police yildonumu hatirlatmasi",
	},
	TypeSurvey: {
		"Hasar sonrasi memnuniyet anketi",
		"Yenileme sonrasi memnuniyet anketi",
		"Genel hizmet degerlendirme anketi",
	},
	TypeCrossSell: {
		"Kasko teklifi sunumu",
		"Konut sigortasi onerisi",
		"DASK yenileme firsati",
		"Saglik sigortasi teklifi",
	},
	TypeFamilyTSS: {
		"Aile TSS paketi tanitimi",
		"Es ve cocuklar icin TSS teklifi",
		"TSS kapsam genisletme gorusmesi",
	},
}

// typeReasons are the AI justification templates. Placeholders:
// {name} customer name, {date} customer birth date, {days} random 10-30,
// {brans} customer's first product branch.
var typeReasons = map[TaskType][]string{
	TypeBirthday: {
		"{name} musterimizin dogum gunu ({date}) yaklasiyor. Kutlama mesaji musteri bagliligini artirir.",
		"{name} icin dogum gunu hatirlatmasi: {date}. Kisisel temas yenileme oranini yukseltir.",
	},
	TypeOccasion: {
		"{name} ile son temasin uzerinden {days} gun gecti. Ozel gun mesaji iliskiyi canli tutar.",
		"{name} musterimize donemsel kutlama planlandi. {brans} bransindaki portfoy icin temas firsati.",
	},
	TypeSurvey: {
		"{name} musterimizin son islem deneyimi olculmedi. {days} gun icinde anket gonderimi oneriliyor.",
		"{name} icin {brans} bransinda memnuniyet verisi eksik. Anket yanit orani bu segmentte yuksek.",
	},
	TypeCrossSell: {
		"{name} musterimizin portfoyunde sadece {brans} var. Benzer profiller capraz satisa acik.",
		"{name} icin {brans} policesi uzerinden ek urun onerisi. Son {days} gunde benzer teklifler iyi donus aldi.",
	},
	TypeFamilyTSS: {
		"{name} musterimizin aile profili TSS kapsamina uygun. {brans} bransindaki guveni tasinabilir.",
		"{name} icin aile TSS paketi oneriliyor. {days} gun icinde arama donusumu artiriyor.",
	},
}

// policyPrefixes are the branch codes used when synthesizing policy numbers.
var policyPrefixes = []string{"TRF", "KSK", "DSK", "SGL"}

// actionResults are the fixed success messages per action.
var actionResults = map[ActionType]string{
	ActionSMS:        "SMS iletildi",
	ActionCall:       "Arama tamamlandi, musteri ile gorusuldu",
	ActionOffer:      "Teklif hazirlandi ve iletildi",
	ActionEmail:      "E-posta gonderildi",
	ActionSurveySend: "Anket gonderildi",
}

// failureReasons is the pool of failure messages.
var failureReasons = []string{
	"Musteriye ulasilamadi",
	"Numara hatali veya kullanim disi",
	"Musteri gorusmeyi reddetti",
	"SMS iletilemedi",
	"E-posta adresi gecersiz",
}
