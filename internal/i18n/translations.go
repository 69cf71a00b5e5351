package i18n

// translations maps UI keys to localized strings. Keys mirror the
// backend's vocabulary (district, mandal, stage schedule) so screen
// code reads naturally against the wire types.
var translations = map[Language]map[string]string{
	English: {
		// Common
		"appName": "Krishi Mitra",
		"welcome": "Welcome",
		"login":   "Login",
		"cancel":  "Cancel",
		"back":    "Back",
		"loading": "Loading...",
		"error":   "Error",
		"retry":   "Retry",

		// Login / signup
		"mobileNumber":      "Mobile Number",
		"enterMobile":       "Enter your mobile number",
		"otp":               "OTP",
		"enterOTP":          "Enter OTP",
		"devOtp":            "Dev OTP: 123456",
		"name":              "Name",
		"enterName":         "Enter your name",
		"district":          "District",
		"selectDistrict":    "Select district",
		"mandal":            "Mandal",
		"selectMandal":      "Select mandal",
		"loginTab":          "Login",
		"signupTab":         "Create Account",
		"createAccount":     "Create Account",
		"invalidMobile":     "Please enter a valid 10-digit mobile number",
		"loginError":        "Login failed. Please try again.",
		"registrationError": "Registration failed. Please try again.",

		// Dashboard
		"dashboard":             "Dashboard",
		"recentRecommendations": "Recent Recommendations",
		"getNewRecommendation":  "Get New Recommendation",
		"report":                "Report",
		"reports":               "Reports",
		"noRecommendations":     "No recommendations yet",
		"startFirstPlan":        "Start by creating your first fertilizer plan.",
		"logout":                "Logout",

		// Recommendation form
		"cropName":          "Crop Name",
		"selectCrop":        "Select crop",
		"variety":           "Variety",
		"enterVariety":      "Enter variety (optional)",
		"sowingDate":        "Sowing Date",
		"areaSown":          "Area Sown (acres)",
		"enterArea":         "Enter area in acres",
		"getRecommendation": "Get Recommendation",
		"invalidArea":       "Area sown must be a positive number",

		// Results
		"recommendation":  "Fertilizer Recommendation",
		"cropStage":       "Crop Stage",
		"daysAfterSowing": "Days After Sowing",
		"fertilizers":     "Fertilizers",
		"fertilizerType":  "Type",
		"amount":          "Amount (kg)",
		"amountPerAcre":   "Per Acre (kg)",
		"timing":          "Timing",
		"cost":            "Cost (₹)",
		"totalCost":       "Total Cost",
		"expectedYield":   "Expected Yield Increase",
		"notes":           "Important Notes",
		"print":           "Save Report",
		"reportSaved":     "Report saved to",

		// Weather
		"weather":        "Weather",
		"currentWeather": "Current Weather",
		"humidity":       "Humidity",
		"rainfall":       "Rainfall",
		"weatherAdvice":  "Weather-Based Advice",
		"notAvailable":   "N/A",

		// Stage schedule
		"stageSchedule":           "Stage-Based Fertilizer Schedule",
		"stages":                  "stages",
		"day":                     "Day",
		"days":                    "days",
		"kg":                      "kg",
		"acre":                    "acre",
		"acres":                   "acres",
		"fertilizersToApply":      "Fertilizers to apply",
		"applicationInstructions": "Application Instructions",
		"tip":                     "Tip",
		"scheduleTip":             "Select any stage to view detailed fertilizer doses and application instructions.",

		// Organic options
		"organicOptions": "Organic & Alternative Options",
		"manures":        "Manures",
		"bioFertilizers": "Bio-Fertilizers",
		"greenManures":   "Green Manures",

		// Purchase pointers
		"whereToBuy":   "Where to Buy",
		"nearbyShops":  "Nearby Shops",
		"onlineStores": "Online Stores",
		"findShops":    "Search for fertilizer shops near",

		// Profile
		"profile":            "Profile",
		"information":        "Information",
		"editProfile":        "Edit Profile",
		"saveChanges":        "Save Changes",
		"profileUpdated":     "Profile updated successfully",
		"languagePreference": "Language Preference",
	},
	Telugu: {
		// Common
		"appName": "కృషి మిత్ర",
		"welcome": "స్వాగతం",
		"login":   "లాగిన్",
		"cancel":  "రద్దు",
		"back":    "వెనుకకు",
		"loading": "లోడ్ అవుతోంది...",
		"error":   "లోపం",
		"retry":   "మళ్లీ ప్రయత్నించండి",

		// Login / signup
		"mobileNumber":      "మొబైల్ నంబర్",
		"enterMobile":       "మీ మొబైల్ నంబర్ నమోదు చేయండి",
		"otp":               "OTP",
		"enterOTP":          "OTP నమోదు చేయండి",
		"devOtp":            "డెవ్ OTP: 123456",
		"name":              "పేరు",
		"enterName":         "మీ పేరు నమోదు చేయండి",
		"district":          "జిల్లా",
		"selectDistrict":    "జిల్లా ఎంచుకోండి",
		"mandal":            "మండలం",
		"selectMandal":      "మండలం ఎంచుకోండి",
		"loginTab":          "లాగిన్",
		"signupTab":         "ఖాతా సృష్టించండి",
		"createAccount":     "ఖాతా సృష్టించండి",
		"invalidMobile":     "దయచేసి చెల్లుబాటు అయ్యే 10-అంకెల మొబైల్ నంబర్ నమోదు చేయండి",
		"loginError":        "లాగిన్ విఫలమైంది. దయచేసి మళ్లీ ప్రయత్నించండి.",
		"registrationError": "నమోదు విఫలమైంది. దయచేసి మళ్లీ ప్రయత్నించండి.",

		// Dashboard
		"dashboard":             "డాష్‌బోర్డ్",
		"recentRecommendations": "ఇటీవలి సిఫార్సులు",
		"getNewRecommendation":  "కొత్త సిఫార్సు పొందండి",
		"report":                "నివేదిక",
		"reports":               "నివేదికలు",
		"noRecommendations":     "ఇంకా సిఫార్సులు లేవు",
		"startFirstPlan":        "మీ మొదటి ఎరువుల ప్రణాళికను సృష్టించడం ద్వారా ప్రారంభించండి.",
		"logout":                "లాగ్అవుట్",

		// Recommendation form
		"cropName":          "పంట పేరు",
		"selectCrop":        "పంట ఎంచుకోండి",
		"variety":           "రకం",
		"enterVariety":      "రకం నమోదు చేయండి (ఐచ్ఛికం)",
		"sowingDate":        "విత్తన తేదీ",
		"areaSown":          "విత్తిన విస్తీర్ణం (ఎకరాలు)",
		"enterArea":         "ఎకరాల్లో విస్తీర్ణం నమోదు చేయండి",
		"getRecommendation": "సిఫార్సు పొందండి",
		"invalidArea":       "విత్తిన విస్తీర్ణం ధన సంఖ్య అయి ఉండాలి",

		// Results
		"recommendation":  "ఎరువుల సిఫార్సు",
		"cropStage":       "పంట దశ",
		"daysAfterSowing": "విత్తిన తర్వాత రోజులు",
		"fertilizers":     "ఎరువులు",
		"fertilizerType":  "రకం",
		"amount":          "మొత్తం (కిలోలు)",
		"amountPerAcre":   "ఎకరాకు (కిలోలు)",
		"timing":          "సమయం",
		"cost":            "ఖర్చు (₹)",
		"totalCost":       "మొత్తం ఖర్చు",
		"expectedYield":   "అంచనా దిగుబడి పెరుగుదల",
		"notes":           "ముఖ్యమైన గమనికలు",
		"print":           "నివేదికను సేవ్ చేయండి",
		"reportSaved":     "నివేదిక సేవ్ చేయబడింది",

		// Weather
		"weather":        "వాతావరణం",
		"currentWeather": "ప్రస్తుత వాతావరణం",
		"humidity":       "తేమ",
		"rainfall":       "వర్షపాతం",
		"weatherAdvice":  "వాతావరణ ఆధారిత సలహా",
		"notAvailable":   "అందుబాటులో లేదు",

		// Stage schedule
		"stageSchedule":           "దశల ఆధారిత ఎరువుల షెడ్యూల్",
		"stages":                  "దశలు",
		"day":                     "రోజు",
		"days":                    "రోజులు",
		"kg":                      "కిలోలు",
		"acre":                    "ఎకరం",
		"acres":                   "ఎకరాలు",
		"fertilizersToApply":      "వర్తించవలసిన ఎరువులు",
		"applicationInstructions": "అప్లికేషన్ సూచనలు",
		"tip":                     "చిట్కా",
		"scheduleTip":             "వివరమైన ఎరువుల మోతాదులు మరియు సూచనల కోసం ఏదైనా దశను ఎంచుకోండి.",

		// Organic options
		"organicOptions": "సేంద్రీయ & ప్రత్యామ్నాయ పద్ధతులు",
		"manures":        "సేంద్రియ ఎరువులు",
		"bioFertilizers": "జీవ ఎరువులు",
		"greenManures":   "పచ్చిరొట్ట ఎరువులు",

		// Purchase pointers
		"whereToBuy":   "ఎక్కడ కొనాలి",
		"nearbyShops":  "సమీప దుకాణాలు",
		"onlineStores": "ఆన్‌లైన్ స్టోర్లు",
		"findShops":    "సమీపంలో ఎరువుల దుకాణాల కోసం శోధించండి",

		// Profile
		"profile":            "ప్రొఫైల్",
		"information":        "సమాచారం",
		"editProfile":        "ప్రొఫైల్ సవరించు",
		"saveChanges":        "మార్పులను సేవ్ చేయండి",
		"profileUpdated":     "ప్రొఫైల్ విజయవంతంగా నవీకరించబడింది",
		"languagePreference": "భాషా ప్రాధాన్యత",
	},
}
