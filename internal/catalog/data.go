package catalog

import "github.com/mfriesen/discovery/internal/domain"

// builtinOfferings is the shipped automation catalog. Order matters: the
// scorer breaks ties on catalog position.
var builtinOfferings = []domain.Offering{
	// ── Restaurants ──────────────────────────────────────────────────────
	{
		Name:               "Phone Reservation Assistant",
		Industry:           "Restaurants",
		Category:           "Phone & Voice",
		MonthlyPrice:       149,
		SetupPrice:         490,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1-2 weeks",
		Description:        "Answers every incoming call, takes table reservations and walk-in questions by voice, 24/7.",
		Benefit:            "Never miss a booking call again, even during service rush.",
	},
	{
		Name:               "Table Booking Sync",
		Industry:           "Restaurants",
		Category:           "Scheduling",
		MonthlyPrice:       89,
		SetupPrice:         390,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1 week",
		Description:        "Keeps phone, website and walk-in reservations in one calendar and prevents double bookings.",
		Benefit:            "One schedule for the whole floor, no overbooked evenings.",
	},
	{
		Name:               "WhatsApp Order Taker",
		Industry:           "Restaurants",
		Category:           "Messaging",
		MonthlyPrice:       119,
		SetupPrice:         590,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "2-3 weeks",
		Description:        "Takes pickup and delivery orders over WhatsApp chat with instant confirmation messages.",
		Benefit:            "Turn message threads into paid orders without staff typing.",
	},
	{
		Name:               "Review Reply Writer",
		Industry:           "Restaurants",
		Category:           "Reputation",
		MonthlyPrice:       59,
		SetupPrice:         290,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1 week",
		Description:        "Drafts personalized replies to Google and social media reviews for one-click approval.",
		Benefit:            "Every guest review answered within hours, not weeks.",
	},
	{
		Name:               "After-Hours Voicemail Agent",
		Industry:           "Restaurants",
		Category:           "Phone & Voice",
		MonthlyPrice:       79,
		SetupPrice:         290,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1 week",
		Description:        "Answers out-of-hours calls, records structured voicemails and sends an immediate summary email.",
		Benefit:            "Morning inbox with every after-hours request already transcribed.",
	},
	{
		Name:               "Event Inquiry Pipeline",
		Industry:           "Restaurants",
		Category:           "Sales",
		MonthlyPrice:       169,
		SetupPrice:         790,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "3 weeks",
		Description:        "Qualifies private-event and catering inquiries from the website form and drafts a quote proposal automatically.",
		Benefit:            "Catering quotes go out the same day instead of next week.",
	},

	// ── Medical Practices ────────────────────────────────────────────────
	{
		Name:               "Patient Call Triage",
		Industry:           "Medical Practices",
		Category:           "Phone & Voice",
		MonthlyPrice:       249,
		SetupPrice:         990,
		Complexity:         domain.ComplexityHigh,
		ImplementationTime: "4-6 weeks",
		Description:        "Answers the practice phone line, triages routine requests from urgent ones and routes callers in real-time.",
		Benefit:            "Reception staff freed from the permanent ringing phone.",
	},
	{
		Name:               "Appointment Reminder Service",
		Industry:           "Medical Practices",
		Category:           "Scheduling",
		MonthlyPrice:       99,
		SetupPrice:         390,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1-2 weeks",
		Description:        "Sends appointment reminders by SMS and email and rebooks cancellations from the waiting list.",
		Benefit:            "No-show rate cut by filling cancelled slots automatically.",
	},
	{
		Name:               "Online Booking Portal",
		Industry:           "Medical Practices",
		Category:           "Scheduling",
		MonthlyPrice:       139,
		SetupPrice:         690,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "2-3 weeks",
		Description:        "Lets patients book, move and cancel appointments on the website around the clock.",
		Benefit:            "Scheduling handled online instead of over the phone.",
	},
	{
		Name:               "Intake Form Digitizer",
		Industry:           "Medical Practices",
		Category:           "Back Office",
		MonthlyPrice:       119,
		SetupPrice:         590,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "2-3 weeks",
		Description:        "Replaces paper intake forms with digital ones and writes the data into the practice system, no manual data entry.",
		Benefit:            "Zero re-typing of patient forms at the front desk.",
	},
	{
		Name:               "Prescription Refill Line",
		Industry:           "Medical Practices",
		Category:           "Phone & Voice",
		MonthlyPrice:       89,
		SetupPrice:         390,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1-2 weeks",
		Description:        "A dedicated voice line that takes repeat prescription requests and queues them for approval.",
		Benefit:            "Refill calls never interrupt the consultation room again.",
	},
	{
		Name:               "Recall Campaign Runner",
		Industry:           "Medical Practices",
		Category:           "Back Office",
		MonthlyPrice:       149,
		SetupPrice:         790,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "3-4 weeks",
		Description:        "Finds patients due for checkups and contacts them by email and SMS until an appointment is booked.",
		Benefit:            "Checkup recalls run themselves quarter after quarter.",
	},

	// ── Trades & Construction ────────────────────────────────────────────
	{
		Name:               "Job Site Call Answering",
		Industry:           "Trades & Construction",
		Category:           "Phone & Voice",
		MonthlyPrice:       129,
		SetupPrice:         490,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1-2 weeks",
		Description:        "Answers customer calls while the crew is on site, takes job details by voice and texts you a summary instantly.",
		Benefit:            "Never lose a job because nobody could pick up the phone.",
	},
	{
		Name:               "Instant Quote Builder",
		Industry:           "Trades & Construction",
		Category:           "Sales",
		MonthlyPrice:       189,
		SetupPrice:         890,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "3-4 weeks",
		Description:        "Turns website inquiry photos and measurements into a structured quote estimate for your review.",
		Benefit:            "Quotes out in hours while competitors take a week.",
	},
	{
		Name:               "Appointment Window Scheduler",
		Industry:           "Trades & Construction",
		Category:           "Scheduling",
		MonthlyPrice:       99,
		SetupPrice:         490,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "2 weeks",
		Description:        "Books site visits into route-friendly time windows and sends customers arrival updates.",
		Benefit:            "Fewer wasted drives, customers know when you arrive.",
	},
	{
		Name:               "Emergency Dispatch Line",
		Industry:           "Trades & Construction",
		Category:           "Phone & Voice",
		MonthlyPrice:       219,
		SetupPrice:         990,
		Complexity:         domain.ComplexityHigh,
		ImplementationTime: "4 weeks",
		Description:        "A 24/7 emergency line that qualifies urgent jobs, wakes the on-call technician and logs everything.",
		Benefit:            "Emergency work captured around the clock at premium rates.",
	},
	{
		Name:               "Invoice Chaser",
		Industry:           "Trades & Construction",
		Category:           "Back Office",
		MonthlyPrice:       79,
		SetupPrice:         390,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1 week",
		Description:        "Sends polite, escalating payment reminder emails for open invoices until they are paid.",
		Benefit:            "Outstanding invoices shrink without awkward calls.",
	},
	{
		Name:               "Lead Follow-Up Sequencer",
		Industry:           "Trades & Construction",
		Category:           "Sales",
		MonthlyPrice:       139,
		SetupPrice:         690,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "2-3 weeks",
		Description:        "Follows up every website and social media lead with a message sequence until they book or decline.",
		Benefit:            "No inquiry goes cold because the office got busy.",
	},

	// ── Retail & E-Commerce ──────────────────────────────────────────────
	{
		Name:               "Store Info Chatbot",
		Industry:           "Retail & E-Commerce",
		Category:           "Messaging",
		MonthlyPrice:       69,
		SetupPrice:         290,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1 week",
		Description:        "Answers stock, opening hours and order status questions in website chat and WhatsApp, instantly.",
		Benefit:            "Routine questions answered without touching the inbox.",
	},
	{
		Name:               "Order Status Hotline",
		Industry:           "Retail & E-Commerce",
		Category:           "Phone & Voice",
		MonthlyPrice:       109,
		SetupPrice:         490,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "2 weeks",
		Description:        "A voice line where customers hear their order and delivery status by phone without waiting for an agent.",
		Benefit:            "Where-is-my-order calls stop reaching your team.",
	},
	{
		Name:               "Returns Desk Automation",
		Industry:           "Retail & E-Commerce",
		Category:           "Back Office",
		MonthlyPrice:       159,
		SetupPrice:         790,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "3 weeks",
		Description:        "Guides customers through returns in chat, issues labels and writes the case into your CRM with no data entry.",
		Benefit:            "Returns processed start to finish without a support ticket.",
	},
	{
		Name:               "Abandoned Cart Recovery",
		Industry:           "Retail & E-Commerce",
		Category:           "Sales",
		MonthlyPrice:       129,
		SetupPrice:         590,
		Complexity:         domain.ComplexityMedium,
		ImplementationTime: "2 weeks",
		Description:        "Wins back abandoned online carts with timed email and WhatsApp reminder messages.",
		Benefit:            "Recovered carts pay for the tool in the first month.",
	},
	{
		Name:               "Social Inbox Concierge",
		Industry:           "Retail & E-Commerce",
		Category:           "Messaging",
		MonthlyPrice:       99,
		SetupPrice:         490,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1-2 weeks",
		Description:        "Answers Instagram and Facebook product questions from one shared social media inbox, day and night.",
		Benefit:            "Social shoppers get answers before they scroll on.",
	},
	{
		Name:               "Restock Alert Notifier",
		Industry:           "Retail & E-Commerce",
		Category:           "Sales",
		MonthlyPrice:       49,
		SetupPrice:         290,
		Complexity:         domain.ComplexityLow,
		ImplementationTime: "1 week",
		Description:        "Lets customers subscribe to back-in-stock alerts and emails them the moment inventory returns.",
		Benefit:            "Sold-out visits convert later instead of never.",
	},
}
