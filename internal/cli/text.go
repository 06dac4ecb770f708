package cli

// UI strings in both display languages. Question prompts and options come
// localized from the questionnaire package; these cover the chrome around
// them.
type uiText struct {
	appTitle        string
	intakeTitle     string
	companyLabel    string
	nameLabel       string
	emailLabel      string
	phoneLabel      string
	selectionTitle  string
	recommendedHdr  string
	othersHdr       string
	billingMonthly  string
	billingAnnual   string
	generating      string
	summaryTitle    string
	offlineEstimate string
	bookHint        string
	sendHint        string
	confirmTitle    string
	referenceLabel  string
	resumePrompt    string
	resumeYes       string
	resumeNo        string
	setupLabel      string
	monthlyLabel    string
	annualLabel     string
	discountLabel   string
	hintNavigate    string
	hintToggle      string
	hintBilling     string
	hintContinue    string
	hintBack        string
	emailInvalid    string
	phoneInvalid    string
	fieldRequired   string
}

var texts = map[string]uiText{
	"en": {
		appTitle:        "discovery",
		intakeTitle:     "Tell us who you are",
		companyLabel:    "Company",
		nameLabel:       "Your name",
		emailLabel:      "Email",
		phoneLabel:      "Phone",
		selectionTitle:  "Your automation package",
		recommendedHdr:  "Recommended for you",
		othersHdr:       "Also available",
		billingMonthly:  "monthly billing",
		billingAnnual:   "annual billing",
		generating:      "Analyzing your answers...",
		summaryTitle:    "Your personalized analysis",
		offlineEstimate: "offline estimate",
		bookHint:        "b: book a call",
		sendHint:        "s: send without booking",
		confirmTitle:    "Thank you! Your inquiry is on its way.",
		referenceLabel:  "Your reference number",
		resumePrompt:    "We found a saved session. Continue where you left off?",
		resumeYes:       "Resume",
		resumeNo:        "Start over",
		setupLabel:      "Setup",
		monthlyLabel:    "Monthly",
		annualLabel:     "Per year",
		discountLabel:   "Volume discount",
		hintNavigate:    "↑↓: navigate",
		hintToggle:      "space: toggle",
		hintBilling:     "a: billing mode",
		hintContinue:    "enter: continue",
		hintBack:        "esc: back",
		emailInvalid:    "enter a valid email address",
		phoneInvalid:    "enter a valid phone number",
		fieldRequired:   "required",
	},
	"de": {
		appTitle:        "discovery",
		intakeTitle:     "Erzählen Sie uns, wer Sie sind",
		companyLabel:    "Unternehmen",
		nameLabel:       "Ihr Name",
		emailLabel:      "E-Mail",
		phoneLabel:      "Telefon",
		selectionTitle:  "Ihr Automatisierungspaket",
		recommendedHdr:  "Für Sie empfohlen",
		othersHdr:       "Ebenfalls verfügbar",
		billingMonthly:  "monatliche Abrechnung",
		billingAnnual:   "jährliche Abrechnung",
		generating:      "Ihre Antworten werden analysiert...",
		summaryTitle:    "Ihre persönliche Analyse",
		offlineEstimate: "Offline-Einschätzung",
		bookHint:        "b: Termin buchen",
		sendHint:        "s: ohne Termin senden",
		confirmTitle:    "Vielen Dank! Ihre Anfrage ist unterwegs.",
		referenceLabel:  "Ihre Referenznummer",
		resumePrompt:    "Wir haben eine gespeicherte Sitzung gefunden. Dort weitermachen?",
		resumeYes:       "Fortsetzen",
		resumeNo:        "Neu beginnen",
		setupLabel:      "Einrichtung",
		monthlyLabel:    "Monatlich",
		annualLabel:     "Pro Jahr",
		discountLabel:   "Mengenrabatt",
		hintNavigate:    "↑↓: Navigieren",
		hintToggle:      "Leertaste: Auswählen",
		hintBilling:     "a: Abrechnungsart",
		hintContinue:    "Enter: Weiter",
		hintBack:        "Esc: Zurück",
		emailInvalid:    "Bitte geben Sie eine gültige E-Mail-Adresse ein",
		phoneInvalid:    "Bitte geben Sie eine gültige Telefonnummer ein",
		fieldRequired:   "Pflichtfeld",
	},
}

func textFor(lang string) uiText {
	if t, ok := texts[lang]; ok {
		return t
	}
	return texts["en"]
}
