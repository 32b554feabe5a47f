package knowledge

// Condition ids of the shipped catalog.
const (
	CommonCold          ConditionID = "common_cold"
	Influenza           ConditionID = "influenza"
	Covid19             ConditionID = "covid19"
	StrepThroat         ConditionID = "strep_throat"
	AllergicRhinitis    ConditionID = "allergic_rhinitis"
	Migraine            ConditionID = "migraine"
	TensionHeadache     ConditionID = "tension_headache"
	Gastroenteritis     ConditionID = "gastroenteritis"
	Appendicitis        ConditionID = "appendicitis"
	UrinaryInfection    ConditionID = "urinary_tract_infection"
	KidneyStones        ConditionID = "kidney_stones"
	MyocardialInfarct   ConditionID = "myocardial_infarction"
	Stroke              ConditionID = "stroke"
	Pneumonia           ConditionID = "pneumonia"
	AsthmaExacerbation  ConditionID = "asthma_exacerbation"
	RefluxDisease       ConditionID = "gerd"
	PanicAttack         ConditionID = "panic_attack"
	Meningitis          ConditionID = "meningitis"
	Hyperglycemia       ConditionID = "type2_diabetes_hyperglycemia"
	HypertensiveUrgency ConditionID = "hypertensive_urgency"
)

const (
	hour  = 1.0
	day   = 24 * hour
	week  = 7 * day
	month = 30 * day
)

func ageAtLeast(age int, adj float64, desc string) RiskModifier {
	return RiskModifier{Description: desc, MinAge: age, Adjustment: adj}
}

func ageBetween(minAge, maxAge int, adj float64, desc string) RiskModifier {
	return RiskModifier{Description: desc, MinAge: minAge, MaxAge: maxAge, Adjustment: adj}
}

func history(adj float64, desc string, terms ...string) RiskModifier {
	return RiskModifier{Description: desc, HistoryTerms: terms, Adjustment: adj}
}

func medication(adj float64, desc string, terms ...string) RiskModifier {
	return RiskModifier{Description: desc, MedicationTerms: terms, Adjustment: adj}
}

func defaultConditions() []Condition {
	return []Condition{
		{
			ID:          CommonCold,
			Name:        "Common cold",
			Description: "A mild viral infection of the nose and throat.",
			Signature: []SignatureSymptom{
				{RunnyNose, 0.9}, {NasalCongestion, 0.8}, {Sneezing, 0.7}, {SoreThroat, 0.6},
				{Cough, 0.5}, {Headache, 0.3}, {Fatigue, 0.3}, {Fever, 0.2},
			},
			TypicalDuration: DurationWindow{MinHours: 12 * hour, MaxHours: 14 * day},
			BaselineUrgency: UrgencyRoutine,
			SelfCare: []string{
				"Rest and drink plenty of fluids.",
				"Saline nasal spray or steam inhalation can ease congestion.",
				"Paracetamol can help with sore throat or aches if you have no reason to avoid it.",
			},
		},
		{
			ID:          Influenza,
			Name:        "Influenza (flu)",
			Description: "A viral respiratory infection with abrupt fever, aches and exhaustion.",
			Signature: []SignatureSymptom{
				{Fever, 1.0}, {BodyAches, 0.9}, {Chills, 0.8}, {Fatigue, 0.8}, {Cough, 0.7},
				{Headache, 0.6}, {SoreThroat, 0.4}, {RunnyNose, 0.3},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MinHours: 12 * hour, MaxHours: 3 * week},
			RiskModifiers: []RiskModifier{
				ageAtLeast(65, 0.10, "age 65 or older raises the risk of flu complications"),
				history(0.05, "a chronic lung, heart or metabolic condition raises flu risk", "asthma", "copd", "diabetes", "heart disease", "heart failure"),
				{Description: "pregnancy raises the risk of severe flu", Gender: GenderFemale, HistoryTerms: []string{"pregnan"}, Adjustment: 0.05},
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: ShortnessOfBreath, MinSeverity: 3, Description: "breathing difficulty during flu can signal pneumonia"},
				{Symptom: Confusion, MinSeverity: 1, Description: "confusion during flu needs prompt assessment"},
			},
			BaselineUrgency: UrgencySoon,
			SelfCare: []string{
				"Rest, stay home and drink plenty of fluids.",
				"Paracetamol or ibuprofen can reduce fever and aches if suitable for you.",
				"Antiviral treatment works best within 48 hours of onset; ask a clinician if you are high risk.",
			},
		},
		{
			ID:          Covid19,
			Name:        "COVID-19",
			Description: "A coronavirus infection that often affects smell and taste as well as the airways.",
			Signature: []SignatureSymptom{
				{LossOfTasteSmell, 1.0}, {Fever, 0.9}, {Cough, 0.9}, {Fatigue, 0.7}, {ShortnessOfBreath, 0.7},
				{BodyAches, 0.5}, {Headache, 0.4}, {SoreThroat, 0.4},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MinHours: 1 * day, MaxHours: 3 * week},
			RiskModifiers: []RiskModifier{
				ageAtLeast(65, 0.10, "age 65 or older raises the risk of severe COVID-19"),
				history(0.05, "a chronic condition raises the risk of severe COVID-19", "diabetes", "obesity", "hypertension", "copd", "heart disease", "kidney disease"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: ShortnessOfBreath, MinSeverity: 3, Description: "worsening breathlessness with COVID-19"},
				{Symptom: Confusion, MinSeverity: 1, Description: "new confusion with COVID-19"},
			},
			BaselineUrgency: UrgencySoon,
			SelfCare: []string{
				"Take a rapid test if available and isolate from others while symptomatic.",
				"Rest and keep well hydrated.",
				"If you own a pulse oximeter, check your oxygen level; below 94% needs medical advice.",
			},
		},
		{
			ID:          StrepThroat,
			Name:        "Strep throat",
			Description: "A bacterial throat infection that may need antibiotics.",
			Signature: []SignatureSymptom{
				{SoreThroat, 1.0}, {Fever, 0.8}, {SwollenGlands, 0.8}, {Headache, 0.4},
				{AbdominalPain, 0.3}, {Rash, 0.3},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MinHours: 6 * hour, MaxHours: 10 * day},
			RiskModifiers: []RiskModifier{
				ageBetween(5, 15, 0.10, "strep throat is most common in school-age children"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: ThroatSwelling, MinSeverity: 1, Description: "throat swelling can threaten the airway"},
			},
			BaselineUrgency: UrgencySoon,
			SelfCare: []string{
				"Warm drinks, lozenges and paracetamol can ease throat pain.",
				"A throat swab is needed to confirm strep; book a visit for testing.",
			},
		},
		{
			ID:          AllergicRhinitis,
			Name:        "Allergic rhinitis (hay fever)",
			Description: "An allergic reaction of the nose and eyes to pollen, dust or animals.",
			Signature: []SignatureSymptom{
				{Sneezing, 1.0}, {ItchyEyes, 0.9}, {RunnyNose, 0.8}, {NasalCongestion, 0.7}, {Cough, 0.2},
			},
			RiskModifiers: []RiskModifier{
				history(0.10, "a history of allergies, asthma or eczema", "allerg", "asthma", "eczema", "hay fever"),
			},
			BaselineUrgency: UrgencyRoutine,
			SelfCare: []string{
				"Avoid known triggers and keep windows closed on high pollen days.",
				"Non-drowsy antihistamines or a steroid nasal spray usually help.",
			},
		},
		{
			ID:          Migraine,
			Name:        "Migraine",
			Description: "Recurrent moderate to severe headaches, often one-sided, with light sensitivity or nausea.",
			Signature: []SignatureSymptom{
				{Headache, 1.0}, {LightSensitivity, 0.8}, {Nausea, 0.7}, {VisionChanges, 0.6},
				{Vomiting, 0.4}, {Dizziness, 0.3},
			},
			TypicalDuration: DurationWindow{MinHours: 2 * hour, MaxHours: 3 * day},
			RiskModifiers: []RiskModifier{
				{Description: "migraine is most common in women aged 15 to 55", Gender: GenderFemale, MinAge: 15, MaxAge: 55, Adjustment: 0.05},
				history(0.15, "a previous diagnosis of migraine", "migraine"),
			},
			BaselineUrgency: UrgencySoon,
			SelfCare: []string{
				"Rest in a dark, quiet room.",
				"Take your usual pain relief early in the attack.",
				"Keep a headache diary to spot triggers.",
			},
		},
		{
			ID:          TensionHeadache,
			Name:        "Tension-type headache",
			Description: "A common band-like headache linked to stress, posture and poor sleep.",
			Signature: []SignatureSymptom{
				{Headache, 1.0}, {NeckPain, 0.6}, {Fatigue, 0.3},
			},
			TypicalDuration: DurationWindow{MinHours: 0.5 * hour, MaxHours: 1 * week},
			BaselineUrgency: UrgencyRoutine,
			SelfCare: []string{
				"Regular meals, fluids and sleep help prevent tension headaches.",
				"Gentle neck stretches and short breaks from screens can relieve tension.",
				"Simple pain relief is fine occasionally but avoid using it more than 2-3 days a week.",
			},
		},
		{
			ID:          Gastroenteritis,
			Name:        "Gastroenteritis",
			Description: "An infection of the gut causing diarrhoea and vomiting.",
			Signature: []SignatureSymptom{
				{Diarrhea, 1.0}, {Vomiting, 0.8}, {Nausea, 0.8}, {AbdominalPain, 0.6},
				{Fever, 0.4}, {LossOfAppetite, 0.3}, {BodyAches, 0.2},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MinHours: 2 * hour, MaxHours: 10 * day},
			RedFlags: []ConditionRedFlag{
				{Symptom: BloodInStool, MinSeverity: 1, Description: "blood in the stool"},
				{Symptom: Vomiting, MinSeverity: 5, Description: "severe vomiting with a risk of dehydration"},
			},
			BaselineUrgency: UrgencyRoutine,
			SelfCare: []string{
				"Sip oral rehydration solution or water frequently.",
				"Eat bland food once you can keep fluids down.",
				"Wash hands carefully to avoid spreading the infection.",
			},
		},
		{
			ID:          Appendicitis,
			Name:        "Appendicitis",
			Description: "Inflammation of the appendix that usually needs surgery.",
			Signature: []SignatureSymptom{
				{AbdominalPain, 1.0}, {LossOfAppetite, 0.6}, {Nausea, 0.6}, {Fever, 0.5}, {Vomiting, 0.5},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MinHours: 2 * hour, MaxHours: 4 * day},
			RiskModifiers: []RiskModifier{
				ageBetween(10, 30, 0.05, "appendicitis is most common between ages 10 and 30"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: AbdominalPain, MinSeverity: 4, Description: "severe abdominal pain"},
			},
			BaselineUrgency: UrgencyUrgent,
			SelfCare: []string{
				"Do not eat or drink until a clinician has examined you.",
				"Avoid painkillers and laxatives that can mask the pain before assessment.",
			},
		},
		{
			ID:          UrinaryInfection,
			Name:        "Urinary tract infection",
			Description: "A bacterial infection of the bladder or urethra.",
			Signature: []SignatureSymptom{
				{PainfulUrination, 1.0}, {FrequentUrination, 0.9}, {BloodInUrine, 0.5},
				{AbdominalPain, 0.4}, {Fever, 0.2},
			},
			TypicalDuration: DurationWindow{MaxHours: 3 * week},
			RiskModifiers: []RiskModifier{
				{Description: "urinary infections are more common in women", Gender: GenderFemale, Adjustment: 0.10},
				history(0.05, "diabetes raises the risk of urinary infections", "diabetes"),
				history(0.05, "previous urinary infections", "urinary tract infection", "uti", "cystitis"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: FlankPain, MinSeverity: 1, Description: "flank pain suggests the kidneys may be involved"},
				{Symptom: Fever, MinSeverity: 4, Description: "high fever with urinary symptoms"},
			},
			BaselineUrgency: UrgencySoon,
			SelfCare: []string{
				"Drink plenty of water.",
				"Book a visit; most urinary infections need a short course of antibiotics.",
			},
		},
		{
			ID:          KidneyStones,
			Name:        "Kidney stones",
			Description: "Crystals blocking the urinary tract, causing waves of severe side pain.",
			Signature: []SignatureSymptom{
				{FlankPain, 1.0}, {BloodInUrine, 0.7}, {Nausea, 0.5}, {Vomiting, 0.4},
				{PainfulUrination, 0.4}, {AbdominalPain, 0.4},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MinHours: 0.5 * hour, MaxHours: 1 * month},
			RiskModifiers: []RiskModifier{
				{Description: "kidney stones are more common in men aged 20 to 60", Gender: GenderMale, MinAge: 20, MaxAge: 60, Adjustment: 0.05},
				history(0.15, "previous kidney stones", "kidney stone", "renal stone", "nephrolithiasis"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: Fever, MinSeverity: 1, Description: "fever with a possible blocked kidney"},
			},
			BaselineUrgency: UrgencyUrgent,
			SelfCare: []string{
				"Drink water steadily unless told otherwise.",
				"Anti-inflammatory pain relief can help if it is safe for you.",
			},
		},
		{
			ID:          MyocardialInfarct,
			Name:        "Heart attack (myocardial infarction)",
			Description: "Blocked blood flow to the heart muscle; a medical emergency.",
			Signature: []SignatureSymptom{
				{ChestPain, 1.0}, {ArmJawPain, 0.8}, {ShortnessOfBreath, 0.7}, {Sweating, 0.7},
				{ChestTightness, 0.6}, {Nausea, 0.5}, {Dizziness, 0.4}, {Fatigue, 0.2},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MaxHours: 3 * day},
			RiskModifiers: []RiskModifier{
				{Description: "men aged 45 or older have a higher cardiac risk", Gender: GenderMale, MinAge: 45, Adjustment: 0.05},
				{Description: "women aged 55 or older have a higher cardiac risk", Gender: GenderFemale, MinAge: 55, Adjustment: 0.05},
				ageAtLeast(65, 0.08, "age 65 or older raises cardiac risk"),
				history(0.08, "high blood pressure raises cardiac risk", "hypertension", "high blood pressure"),
				history(0.08, "diabetes raises cardiac risk", "diabetes"),
				history(0.05, "high cholesterol raises cardiac risk", "cholesterol", "hyperlipidemia"),
				history(0.05, "smoking raises cardiac risk", "smok"),
				history(0.10, "known heart disease", "heart disease", "coronary", "angina", "heart attack"),
				medication(0.05, "takes nitrate medication for angina", "nitroglycerin", "glyceryl trinitrate", "gtn"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: ChestPain, MinSeverity: 4, Description: "severe chest pain"},
				{Symptom: Fainting, MinSeverity: 1, Description: "fainting with chest symptoms"},
			},
			BaselineUrgency: UrgencyEmergency,
			SelfCare: []string{
				"Stop any activity and sit or lie down.",
				"Chew an aspirin (300 mg) if you are not allergic and have not been told to avoid it.",
			},
		},
		{
			ID:          Stroke,
			Name:        "Stroke",
			Description: "Interrupted blood supply to part of the brain; every minute counts.",
			Signature: []SignatureSymptom{
				{OneSidedWeakness, 1.0}, {FacialDroop, 1.0}, {SlurredSpeech, 0.9}, {Confusion, 0.6},
				{VisionChanges, 0.5}, {Dizziness, 0.4}, {Headache, 0.3},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MaxHours: 3 * day},
			RiskModifiers: []RiskModifier{
				ageAtLeast(65, 0.10, "age 65 or older raises stroke risk"),
				history(0.08, "high blood pressure raises stroke risk", "hypertension", "high blood pressure"),
				history(0.08, "atrial fibrillation raises stroke risk", "atrial fibrillation", "afib", "a-fib"),
				history(0.04, "diabetes raises stroke risk", "diabetes"),
				history(0.04, "smoking raises stroke risk", "smok"),
			},
			BaselineUrgency: UrgencyEmergency,
			SelfCare: []string{
				"Note the time symptoms started; treatment options depend on it.",
				"Do not eat, drink or take medication until assessed.",
			},
		},
		{
			ID:          Pneumonia,
			Name:        "Pneumonia",
			Description: "An infection of the lung tissue causing cough, fever and breathlessness.",
			Signature: []SignatureSymptom{
				{Cough, 1.0}, {Fever, 0.9}, {ShortnessOfBreath, 0.8}, {Chills, 0.6}, {ChestPain, 0.5},
				{Fatigue, 0.5}, {Sweating, 0.3}, {Confusion, 0.3},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MinHours: 1 * day, MaxHours: 3 * week},
			RiskModifiers: []RiskModifier{
				ageAtLeast(65, 0.10, "age 65 or older raises pneumonia risk"),
				ageBetween(0, 2, 0.05, "infants are at higher risk of pneumonia"),
				history(0.05, "chronic lung or heart disease", "copd", "asthma", "heart failure", "emphysema"),
				history(0.05, "smoking raises pneumonia risk", "smok"),
				medication(0.05, "medication that weakens the immune system", "prednisone", "methotrexate", "chemotherapy", "tacrolimus"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: ShortnessOfBreath, MinSeverity: 4, Description: "severe breathlessness"},
				{Symptom: Confusion, MinSeverity: 1, Description: "confusion with a chest infection"},
			},
			BaselineUrgency: UrgencyUrgent,
			SelfCare: []string{
				"Rest and drink plenty of fluids.",
				"Pneumonia usually needs assessment and often antibiotics; do not wait for it to pass.",
			},
		},
		{
			ID:          AsthmaExacerbation,
			Name:        "Asthma attack",
			Description: "Narrowing of the airways causing wheeze, breathlessness and chest tightness.",
			Signature: []SignatureSymptom{
				{Wheezing, 1.0}, {ShortnessOfBreath, 0.9}, {ChestTightness, 0.8}, {Cough, 0.7},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MaxHours: 1 * week},
			RiskModifiers: []RiskModifier{
				history(0.20, "known asthma", "asthma"),
				medication(0.10, "uses a reliever inhaler", "albuterol", "salbutamol", "ventolin", "inhaler"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: ShortnessOfBreath, MinSeverity: 4, Description: "severe breathlessness during an asthma attack"},
				{Symptom: Confusion, MinSeverity: 1, Description: "drowsiness or confusion during an asthma attack"},
			},
			BaselineUrgency: UrgencyUrgent,
			SelfCare: []string{
				"Sit upright and use your reliever inhaler as your asthma plan describes.",
				"If the reliever does not help within minutes, call for help.",
			},
		},
		{
			ID:          RefluxDisease,
			Name:        "Gastro-oesophageal reflux (GERD)",
			Description: "Stomach acid rising into the food pipe, causing heartburn.",
			Signature: []SignatureSymptom{
				{Heartburn, 1.0}, {ChestPain, 0.5}, {AbdominalPain, 0.3}, {Nausea, 0.3},
				{Cough, 0.3}, {SoreThroat, 0.2},
			},
			TypicalDuration: DurationWindow{MinHours: 0.5 * hour},
			RiskModifiers: []RiskModifier{
				history(0.05, "obesity or hiatal hernia", "obesity", "hiatal hernia", "hiatus hernia"),
				medication(0.05, "already takes acid-reducing medication", "omeprazole", "pantoprazole", "lansoprazole", "antacid", "ranitidine", "famotidine"),
			},
			BaselineUrgency: UrgencyRoutine,
			SelfCare: []string{
				"Eat smaller meals and avoid eating within 3 hours of bedtime.",
				"Cut down on alcohol, caffeine, fatty and spicy food.",
				"Raise the head of your bed slightly.",
			},
		},
		{
			ID:          PanicAttack,
			Name:        "Panic attack",
			Description: "A sudden surge of intense fear with strong physical symptoms.",
			Signature: []SignatureSymptom{
				{Anxiety, 1.0}, {Palpitations, 0.9}, {Trembling, 0.7}, {ShortnessOfBreath, 0.6},
				{Sweating, 0.6}, {ChestPain, 0.5}, {Dizziness, 0.5}, {Nausea, 0.3},
			},
			TypicalDuration: DurationWindow{MaxHours: 2 * hour},
			RiskModifiers: []RiskModifier{
				history(0.15, "a history of anxiety or panic disorder", "anxiety", "panic"),
			},
			BaselineUrgency: UrgencySoon,
			SelfCare: []string{
				"Slow your breathing: in for 4 seconds, out for 6 seconds.",
				"Panic attacks pass; talking therapies are very effective for recurrent attacks.",
			},
		},
		{
			ID:          Meningitis,
			Name:        "Meningitis",
			Description: "Infection of the membranes around the brain and spinal cord.",
			Signature: []SignatureSymptom{
				{StiffNeck, 1.0}, {Fever, 0.9}, {Headache, 0.9}, {LightSensitivity, 0.7},
				{Confusion, 0.6}, {Vomiting, 0.5}, {Rash, 0.5},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MaxHours: 1 * week},
			RiskModifiers: []RiskModifier{
				ageBetween(0, 4, 0.05, "young children are at higher risk of meningitis"),
				ageBetween(16, 24, 0.05, "teenagers and young adults are at higher risk of meningitis"),
				history(0.05, "a weakened immune system", "immunocompromised", "hiv", "splenectomy", "no spleen"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: Rash, MinSeverity: 1, Description: "rash with fever and stiff neck"},
				{Symptom: Confusion, MinSeverity: 1, Description: "confusion with suspected meningitis"},
			},
			BaselineUrgency: UrgencyEmergency,
			SelfCare: []string{
				"Seek emergency care; meningitis needs treatment in hospital.",
			},
		},
		{
			ID:          Hyperglycemia,
			Name:        "High blood sugar (possible type 2 diabetes)",
			Description: "Raised blood glucose causing thirst, frequent urination and tiredness.",
			Signature: []SignatureSymptom{
				{ExcessiveThirst, 1.0}, {FrequentUrination, 0.9}, {Fatigue, 0.6}, {WeightLoss, 0.6},
				{VisionChanges, 0.5},
			},
			TypicalDuration: DurationWindow{MinHours: 3 * day},
			RiskModifiers: []RiskModifier{
				ageAtLeast(45, 0.05, "age 45 or older raises diabetes risk"),
				history(0.10, "obesity or prediabetes", "obesity", "prediabetes", "pre-diabetes", "gestational diabetes"),
				history(0.15, "known diabetes", "diabetes"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: Confusion, MinSeverity: 1, Description: "confusion with high blood sugar"},
				{Symptom: Vomiting, MinSeverity: 3, Description: "vomiting with high blood sugar can signal ketoacidosis"},
			},
			BaselineUrgency: UrgencySoon,
			SelfCare: []string{
				"Drink water rather than sugary drinks.",
				"Book a blood test to check your glucose and HbA1c.",
			},
		},
		{
			ID:          HypertensiveUrgency,
			Name:        "Severely raised blood pressure",
			Description: "Blood pressure high enough to cause symptoms and risk organ damage.",
			Signature: []SignatureSymptom{
				{Headache, 0.8}, {VisionChanges, 0.7}, {Dizziness, 0.6}, {ChestPain, 0.5},
				{Nausea, 0.4}, {ShortnessOfBreath, 0.4}, {Confusion, 0.4},
			},
			Acute:           true,
			TypicalDuration: DurationWindow{MaxHours: 3 * day},
			RiskModifiers: []RiskModifier{
				history(0.15, "known high blood pressure", "hypertension", "high blood pressure"),
				ageAtLeast(65, 0.05, "age 65 or older"),
				medication(0.05, "takes blood pressure medication", "amlodipine", "lisinopril", "losartan", "ramipril", "bisoprolol", "hydrochlorothiazide"),
			},
			RedFlags: []ConditionRedFlag{
				{Symptom: Confusion, MinSeverity: 1, Description: "confusion with very high blood pressure"},
				{Symptom: ChestPain, MinSeverity: 3, Description: "chest pain with very high blood pressure"},
				{Symptom: VisionChanges, MinSeverity: 4, Description: "marked vision loss with very high blood pressure"},
			},
			BaselineUrgency: UrgencyUrgent,
			SelfCare: []string{
				"Sit quietly for 5 minutes and recheck your blood pressure if you have a monitor.",
				"Take your usual blood pressure medication; do not double doses.",
			},
		},
	}
}
