package knowledge

// Canonical symptom keys.
const (
	Fever             SymptomKey = "fever"
	Chills            SymptomKey = "chills"
	Cough             SymptomKey = "cough"
	SoreThroat        SymptomKey = "sore_throat"
	RunnyNose         SymptomKey = "runny_nose"
	NasalCongestion   SymptomKey = "nasal_congestion"
	Sneezing          SymptomKey = "sneezing"
	ItchyEyes         SymptomKey = "itchy_eyes"
	Headache          SymptomKey = "headache"
	Fatigue           SymptomKey = "fatigue"
	BodyAches         SymptomKey = "body_aches"
	LossOfTasteSmell  SymptomKey = "loss_of_taste_smell"
	SwollenGlands     SymptomKey = "swollen_lymph_nodes"
	ShortnessOfBreath SymptomKey = "shortness_of_breath"
	Wheezing          SymptomKey = "wheezing"
	ChestTightness    SymptomKey = "chest_tightness"
	ChestPain         SymptomKey = "chest_pain"
	ArmJawPain        SymptomKey = "arm_jaw_pain"
	Palpitations      SymptomKey = "palpitations"
	Sweating          SymptomKey = "sweating"
	Dizziness         SymptomKey = "dizziness"
	Fainting          SymptomKey = "fainting"
	Nausea            SymptomKey = "nausea"
	Vomiting          SymptomKey = "vomiting"
	Diarrhea          SymptomKey = "diarrhea"
	AbdominalPain     SymptomKey = "abdominal_pain"
	LossOfAppetite    SymptomKey = "loss_of_appetite"
	Heartburn         SymptomKey = "heartburn"
	PainfulUrination  SymptomKey = "painful_urination"
	FrequentUrination SymptomKey = "frequent_urination"
	BloodInUrine      SymptomKey = "blood_in_urine"
	FlankPain         SymptomKey = "flank_pain"
	StiffNeck         SymptomKey = "stiff_neck"
	LightSensitivity  SymptomKey = "sensitivity_to_light"
	VisionChanges     SymptomKey = "vision_changes"
	Confusion         SymptomKey = "confusion"
	OneSidedWeakness  SymptomKey = "one_sided_weakness"
	FacialDroop       SymptomKey = "facial_droop"
	SlurredSpeech     SymptomKey = "slurred_speech"
	Rash              SymptomKey = "rash"
	Hives             SymptomKey = "hives"
	ThroatSwelling    SymptomKey = "throat_swelling"
	ExcessiveThirst   SymptomKey = "excessive_thirst"
	WeightLoss        SymptomKey = "weight_loss"
	Trembling         SymptomKey = "trembling"
	Anxiety           SymptomKey = "anxiety"
	VomitingBlood     SymptomKey = "vomiting_blood"
	BloodInStool      SymptomKey = "blood_in_stool"
	Seizure           SymptomKey = "seizure"
	SuicidalThoughts  SymptomKey = "suicidal_thoughts"
	NeckPain          SymptomKey = "neck_pain"
)

func defaultSymptoms() []Symptom {
	return []Symptom{
		{Key: Fever, Name: "fever", Question: "Have you had a fever or felt feverish?",
			Synonyms: []string{"high temperature", "temperature", "pyrexia", "feverish", "fiebre", "fièvre", "बुखार", "bukhar", "jwar"}},
		{Key: Chills, Name: "chills", Question: "Have you had chills or shivering?",
			Synonyms: []string{"shivering", "rigors", "shivers", "escalofríos", "frissons", "ठंड लगना", "kapkapi"}},
		{Key: Cough, Name: "cough", Question: "Do you have a cough?",
			Synonyms: []string{"coughing", "dry cough", "wet cough", "productive cough", "tos", "toux", "खांसी", "khansi"}},
		{Key: SoreThroat, Name: "sore throat", Question: "Do you have a sore or painful throat?",
			Synonyms: []string{"throat pain", "painful throat", "scratchy throat", "pharyngitis", "dolor de garganta", "mal de gorge", "गले में खराश", "gale mein dard"}},
		{Key: RunnyNose, Name: "runny nose", Question: "Do you have a runny nose?",
			Synonyms: []string{"rhinorrhea", "running nose", "nasal discharge", "secreción nasal", "nez qui coule", "बहती नाक", "naak behna"}},
		{Key: NasalCongestion, Name: "nasal congestion", Question: "Is your nose blocked or stuffy?",
			Synonyms: []string{"stuffy nose", "blocked nose", "congestion", "congestión nasal", "nez bouché", "बंद नाक"}},
		{Key: Sneezing, Name: "sneezing", Question: "Have you been sneezing a lot?",
			Synonyms: []string{"sneeze", "sneezes", "estornudos", "éternuements", "छींक", "chheenk"}},
		{Key: ItchyEyes, Name: "itchy, watery eyes", Question: "Are your eyes itchy or watery?",
			Synonyms: []string{"itchy eyes", "watery eyes", "red itchy eyes", "ojos llorosos", "yeux qui piquent"}},
		{Key: Headache, Name: "headache", Question: "Do you have a headache?",
			Synonyms: []string{"head ache", "head pain", "migraine pain", "cephalgia", "dolor de cabeza", "mal de tête", "céphalée", "सिरदर्द", "सिर दर्द", "sir dard", "sar dard"}},
		{Key: Fatigue, Name: "fatigue", Question: "Have you felt unusually tired or weak?",
			Synonyms: []string{"tiredness", "tired", "exhaustion", "exhausted", "weakness", "lethargy", "cansancio", "fatiga", "fatigue", "थकान", "thakan", "kamzori"}},
		{Key: BodyAches, Name: "body aches", Question: "Do you have aching muscles or body aches?",
			Synonyms: []string{"muscle aches", "muscle pain", "myalgia", "aching muscles", "body pain", "dolores musculares", "courbatures", "बदन दर्द", "badan dard"}},
		{Key: LossOfTasteSmell, Name: "loss of taste or smell", Question: "Have you lost your sense of taste or smell?",
			Synonyms: []string{"loss of smell", "loss of taste", "anosmia", "can't smell", "cannot taste", "pérdida del olfato", "perte de l'odorat"}},
		{Key: SwollenGlands, Name: "swollen lymph nodes", Question: "Are the glands in your neck swollen or tender?",
			Synonyms: []string{"swollen glands", "swollen neck glands", "lymphadenopathy", "ganglios inflamados"}},
		{Key: ShortnessOfBreath, Name: "shortness of breath", Question: "Are you short of breath or finding it hard to breathe?",
			Synonyms: []string{"breathlessness", "difficulty breathing", "trouble breathing", "hard to breathe", "can't breathe", "dyspnea", "dyspnoea", "breathless", "falta de aire", "dificultad para respirar", "essoufflement", "सांस फूलना", "सांस लेने में तकलीफ", "saans phoolna"}},
		{Key: Wheezing, Name: "wheezing", Question: "Do you hear a whistling sound or wheeze when you breathe?",
			Synonyms: []string{"wheeze", "whistling breath", "sibilancias", "sifflement"}},
		{Key: ChestTightness, Name: "chest tightness", Question: "Does your chest feel tight?",
			Synonyms: []string{"tight chest", "chest pressure", "pressure in chest", "opresión en el pecho", "oppression thoracique"}},
		{Key: ChestPain, Name: "chest pain", Question: "Do you have any chest pain?",
			Synonyms: []string{"pain in chest", "chest ache", "angina", "dolor de pecho", "dolor torácico", "douleur thoracique", "douleur à la poitrine", "सीने में दर्द", "seene mein dard", "chhati mein dard"}},
		{Key: ArmJawPain, Name: "pain spreading to the arm or jaw", Question: "Does any pain spread to your arm, shoulder or jaw?",
			Synonyms: []string{"arm pain", "jaw pain", "left arm pain", "pain radiating to arm", "pain in left arm", "dolor en el brazo"}},
		{Key: Palpitations, Name: "palpitations", Question: "Have you noticed a racing, pounding or irregular heartbeat?",
			Synonyms: []string{"racing heart", "heart racing", "pounding heart", "irregular heartbeat", "fluttering", "palpitaciones", "palpitations cardiaques", "दिल की धड़कन तेज", "dhadkan"}},
		{Key: Sweating, Name: "sweating", Question: "Have you had episodes of heavy sweating?",
			Synonyms: []string{"cold sweat", "sweats", "night sweats", "diaphoresis", "sudoración", "sueurs", "पसीना", "paseena"}},
		{Key: Dizziness, Name: "dizziness", Question: "Have you felt dizzy or lightheaded?",
			Synonyms: []string{"dizzy", "lightheaded", "light headed", "vertigo", "mareo", "mareos", "vertiges", "étourdissements", "चक्कर", "chakkar"}},
		{Key: Fainting, Name: "fainting", Question: "Have you fainted or blacked out?",
			Synonyms: []string{"fainted", "passed out", "blackout", "syncope", "desmayo", "évanouissement", "बेहोशी", "behoshi"}},
		{Key: Nausea, Name: "nausea", Question: "Do you feel sick to your stomach (nauseous)?",
			Synonyms: []string{"nauseous", "queasy", "feeling sick", "náuseas", "nausée", "nausées", "जी मिचलाना", "ji michlana"}},
		{Key: Vomiting, Name: "vomiting", Question: "Have you been vomiting?",
			Synonyms: []string{"throwing up", "vomit", "emesis", "being sick", "vómitos", "vomissements", "उल्टी", "ulti"}},
		{Key: Diarrhea, Name: "diarrhoea", Question: "Have you had loose or watery stools?",
			Synonyms: []string{"diarrhoea", "loose stools", "watery stools", "loose motions", "diarrea", "diarrhée", "दस्त", "dast"}},
		{Key: AbdominalPain, Name: "abdominal pain", Question: "Do you have pain in your stomach or abdomen?",
			Synonyms: []string{"stomach ache", "stomachache", "stomach pain", "belly pain", "tummy ache", "tummy pain", "abdominal cramps", "stomach cramps", "dolor abdominal", "dolor de estómago", "mal au ventre", "douleur abdominale", "पेट दर्द", "pet dard"}},
		{Key: LossOfAppetite, Name: "loss of appetite", Question: "Have you lost your appetite?",
			Synonyms: []string{"no appetite", "not hungry", "poor appetite", "anorexia", "falta de apetito", "perte d'appétit", "भूख न लगना"}},
		{Key: Heartburn, Name: "heartburn", Question: "Do you get a burning feeling behind the breastbone, especially after meals?",
			Synonyms: []string{"acid reflux", "reflux", "indigestion", "burning chest after eating", "acidez", "brûlures d'estomac", "सीने में जलन", "acidity"}},
		{Key: PainfulUrination, Name: "painful urination", Question: "Does it burn or hurt when you pass urine?",
			Synonyms: []string{"burning urination", "burning when urinating", "dysuria", "pain when peeing", "ardor al orinar", "brûlure en urinant", "पेशाब में जलन"}},
		{Key: FrequentUrination, Name: "frequent urination", Question: "Are you passing urine more often than usual?",
			Synonyms: []string{"urinating often", "peeing a lot", "polyuria", "urgency", "orinar frecuentemente", "envie fréquente d'uriner", "बार बार पेशाब"}},
		{Key: BloodInUrine, Name: "blood in urine", Question: "Have you noticed blood or pink colour in your urine?",
			Synonyms: []string{"hematuria", "haematuria", "red urine", "pink urine", "sangre en la orina", "sang dans les urines"}},
		{Key: FlankPain, Name: "flank pain", Question: "Do you have pain in your side or lower back, below the ribs?",
			Synonyms: []string{"side pain", "kidney pain", "loin pain", "lower back pain", "dolor lumbar", "douleur au flanc"}},
		{Key: StiffNeck, Name: "stiff neck", Question: "Is your neck stiff, so it is hard to bend your chin to your chest?",
			Synonyms: []string{"neck stiffness", "rigid neck", "rigidez de nuca", "raideur de la nuque", "गर्दन में अकड़न"}},
		{Key: LightSensitivity, Name: "sensitivity to light", Question: "Does bright light bother your eyes more than usual?",
			Synonyms: []string{"light sensitivity", "photophobia", "fotofobia", "photophobie"}},
		{Key: VisionChanges, Name: "vision changes", Question: "Have you had blurred vision or other changes in your sight?",
			Synonyms: []string{"blurred vision", "blurry vision", "double vision", "vision loss", "visual aura", "aura", "visión borrosa", "vision floue", "धुंधला दिखना"}},
		{Key: Confusion, Name: "confusion", Question: "Have you or others noticed confusion or unusual drowsiness?",
			Synonyms: []string{"confused", "disoriented", "disorientation", "altered mental status", "confusión", "confusion mentale", "भ्रम"}},
		{Key: OneSidedWeakness, Name: "weakness on one side", Question: "Do you have weakness or numbness on one side of the body?",
			Synonyms: []string{"one sided weakness", "numbness on one side", "arm weakness", "hemiparesis", "can't lift arm", "debilidad en un lado", "faiblesse d'un côté"}},
		{Key: FacialDroop, Name: "facial drooping", Question: "Is one side of your face drooping?",
			Synonyms: []string{"face drooping", "facial droop", "drooping face", "droopy face", "cara caída", "visage affaissé"}},
		{Key: SlurredSpeech, Name: "slurred speech", Question: "Is your speech slurred or hard to understand?",
			Synonyms: []string{"difficulty speaking", "trouble speaking", "speech difficulty", "habla arrastrada", "troubles de la parole"}},
		{Key: Rash, Name: "rash", Question: "Do you have a skin rash?",
			Synonyms: []string{"skin rash", "spots", "red spots", "erupción", "sarpullido", "éruption cutanée", "दाने", "chakatte"}},
		{Key: Hives, Name: "hives", Question: "Do you have raised, itchy welts on the skin?",
			Synonyms: []string{"urticaria", "welts", "itchy welts", "urticaire", "ronchas"}},
		{Key: ThroatSwelling, Name: "throat or tongue swelling", Question: "Is your throat, tongue or lips swelling?",
			Synonyms: []string{"swollen throat", "throat swelling", "swollen tongue", "swollen lips", "tongue swelling", "throat closing", "hinchazón de garganta", "gonflement de la gorge"}},
		{Key: ExcessiveThirst, Name: "excessive thirst", Question: "Are you much thirstier than usual?",
			Synonyms: []string{"very thirsty", "increased thirst", "polydipsia", "sed excesiva", "soif excessive", "ज्यादा प्यास"}},
		{Key: WeightLoss, Name: "unexplained weight loss", Question: "Have you lost weight without trying?",
			Synonyms: []string{"weight loss", "losing weight", "pérdida de peso", "perte de poids", "वजन घटना"}},
		{Key: Trembling, Name: "trembling", Question: "Have you been shaking or trembling?",
			Synonyms: []string{"shaking", "tremor", "tremors", "temblores", "tremblements"}},
		{Key: Anxiety, Name: "intense fear or anxiety", Question: "Have you had sudden episodes of intense fear or dread?",
			Synonyms: []string{"panic", "fear", "sense of doom", "anxious", "nervousness", "ansiedad", "angoisse", "घबराहट", "ghabrahat"}},
		{Key: VomitingBlood, Name: "vomiting blood", Question: "Have you vomited blood or material that looks like coffee grounds?",
			Synonyms: []string{"blood in vomit", "hematemesis", "coffee ground vomit", "vómito con sangre", "vomissement de sang"}},
		{Key: BloodInStool, Name: "blood in stool", Question: "Have you had blood in your stool or black, tarry stools?",
			Synonyms: []string{"bloody stool", "rectal bleeding", "black stool", "tarry stool", "melena", "sangre en las heces", "sang dans les selles"}},
		{Key: Seizure, Name: "seizure", Question: "Have you had a seizure or fit?",
			Synonyms: []string{"convulsion", "convulsions", "fitting", "convulsiones", "crise d'épilepsie", "दौरा"}},
		{Key: SuicidalThoughts, Name: "thoughts of self-harm", Question: "Have you had thoughts of harming yourself or ending your life?",
			Synonyms: []string{"suicidal thoughts", "suicidal", "self harm", "want to die", "thoughts of suicide", "pensamientos suicidas", "idées suicidaires"}},
		{Key: NeckPain, Name: "neck pain", Question: "Do you have pain in your neck?",
			Synonyms: []string{"sore neck", "dolor de cuello", "mal au cou"}},
	}
}
