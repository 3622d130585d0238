package catalog

import "time"

// Title is the presentation's document title.
const Title = "The Constitution of the Taj Mahal"

// Tagline is shown on the intro overlay.
const Tagline = "A cinematic learning journey with golden dawns, whispered vows, and the science that holds love aloft. Press start, close your eyes for a moment, and let history bloom."

var defaultScenes = []Scene{
	{
		ID:       "promise",
		Title:    "A Promise of Marble",
		Subtitle: "Agra, 1631",
		Description: [2]string{
			"Dawn lights the Yamuna in soft gold as a mourning emperor imagines a monument worthy of eternal memory.",
			"Students witness how a vow can mobilise poets, mathematicians, and artisans across continents.",
		},
		Facts: []Fact{
			{Label: "Moment", Value: "Mumtaz Mahal's passing at Burhanpur"},
			{Label: "Response", Value: "Shah Jahan pledges an eternal memorial"},
			{Label: "Lesson", Value: "Emotion becomes the blueprint for innovation"},
		},
		Quote:      Quote{Text: "हमारी मोहब्बत पत्थरों में सांस लेगी।", Author: "Shah Jahan"},
		Highlight:  "The vow that ignited twenty thousand minds.",
		Duration:   43 * time.Second,
		Background: "linear-gradient(135deg, #150b0d 0%, #3b1a1a 38%, #b78544 100%)",
		Overlay:    "radial-gradient(circle at 20% 25%, rgba(255, 224, 167, 0.4), transparent 58%), radial-gradient(circle at 82% 65%, rgba(90, 15, 38, 0.32), transparent 55%)",
		Texture:    "radial-gradient(circle at 12% 18%, rgba(255, 255, 255, 0.05) 0%, transparent 38%), radial-gradient(circle at 75% 28%, rgba(255, 255, 255, 0.04) 0%, transparent 42%), linear-gradient(120deg, rgba(255, 247, 235, 0.1), transparent)",
		Camera:     Camera{Scale: 1.12, X: -3, Y: -2},
		Accent:     "#f5cd8b",
		Narration:  "सूर्योदय की सुनहरी आभा में यमुना शांत बह रही है। महल की दीवारों पर पिघलते मोती जैसे ओस चमक रही है और शाहजहाँ मौन खड़े हैं, हाथों में वह प्रतिज्ञा जो प्रेम और शोक का संगम बन गई। 1631 में मुमताज़ की अंतिम साँसों के साथ उन्होंने वचन दिया कि उनके प्रेम को पत्थर में बसा देंगे। इसी संकल्प ने कलाकारों, कवियों और वैज्ञानिकों को एकजुट किया। यह कहानी केवल महल की नहीं, उस भावना की है जिसमें हर ईंट इंसानी दिल की धड़कन बन गई। आइए, उस प्रतिज्ञा के साथ आगे बढ़ें जिसने इतिहास को सोने की रोशनी से रंग दिया।",
	},
	{
		ID:       "blueprint",
		Title:    "Designing Eternity",
		Subtitle: "The imperial studios",
		Description: [2]string{
			"Architects, astronomers, and planners align maps with the stars to script a celestial geometry.",
			"Learners see mathematics and poetry woven into a single architectural sentence.",
		},
		Facts: []Fact{
			{Label: "Chief Architect", Value: "Ustad Ahmad Lahori"},
			{Label: "Design Principle", Value: "Perfect bilateral symmetry"},
			{Label: "Site Science", Value: "Soil readings along the Yamuna floodplain"},
		},
		Quote:      Quote{Text: "जगह का हर कोना आकाश की दिशा से तय होगा।", Author: "Ustad Ahmad Lahori"},
		Highlight:  "Blueprints blend astronomy, geometry, and devotion.",
		Duration:   45 * time.Second,
		Background: "linear-gradient(120deg, #0d1724 0%, #1f2f48 42%, #a6b4d5 100%)",
		Overlay:    "radial-gradient(circle at 18% 32%, rgba(126, 194, 255, 0.38), transparent 56%), radial-gradient(circle at 80% 72%, rgba(18, 48, 87, 0.45), transparent 64%)",
		Texture:    "radial-gradient(circle at 10% 10%, rgba(255, 255, 255, 0.05) 0%, transparent 30%), radial-gradient(circle at 60% 20%, rgba(255, 255, 255, 0.06) 0%, transparent 38%), linear-gradient(160deg, rgba(18, 27, 54, 0.45), rgba(6, 9, 20, 0.2))",
		Camera:     Camera{Scale: 1.1, X: 2, Y: -4},
		Accent:     "#9cc3ff",
		Narration:  "दरबार में उस्ताद अहमद लाहौरी अपने शिष्यों के संग नक्शे बुन रहे हैं। फ़ारसी ज्योतिषी तारों की चाल से दिशाएँ चुनते हैं, जबकि इंजीनियर यमुना की मिट्टी जांचते हैं। शाहजहाँ का आदेश स्पष्ट है—एक ऐसा धाम जो समरूपता में स्वर्ग को छू ले। संगमरमर मकबरे की रेखाओं से लेकर चारदीवारी के बगीचों तक, हर रेखा गणित और कविता का संगम है। योजना की हर परत सवाल करती है: प्रेम को हम किस रूप में संरक्षित करें? जवाब मिलता है—संगठन, संतुलन और प्रकाश की भाषा में।",
	},
	{
		ID:       "craft",
		Title:    "Hands of Many Nations",
		Subtitle: "A global atelier",
		Description: [2]string{
			"Workshops ring with chisels and poetry as artisans from Rajasthan to Bukhara craft shared symbolism.",
			"Students experience diversity translating into a single visual hymn.",
		},
		Facts: []Fact{
			{Label: "Artisans", Value: "Over 20,000 master craftsmen"},
			{Label: "Techniques", Value: "Pietra dura inlay & Makrana marble carving"},
			{Label: "Cultural Blend", Value: "Persian calligraphy meets Sanskrit motifs"},
		},
		Quote:      Quote{Text: "जहाँ कला मिलती है, वहाँ सीमाएँ मिट जाती हैं।", Author: "Workshop foreman"},
		Highlight:  "Every petal is laid with mathematical grace and human warmth.",
		Duration:   46 * time.Second,
		Background: "linear-gradient(130deg, #1a1e22 0%, #3d2b3b 48%, #f0c9b3 100%)",
		Overlay:    "radial-gradient(circle at 30% 35%, rgba(255, 200, 170, 0.42), transparent 62%), radial-gradient(circle at 78% 68%, rgba(90, 46, 90, 0.35), transparent 60%)",
		Texture:    "radial-gradient(circle at 18% 22%, rgba(255, 255, 255, 0.05), transparent 36%), radial-gradient(circle at 72% 24%, rgba(255, 255, 255, 0.04), transparent 40%), linear-gradient(140deg, rgba(215, 174, 170, 0.35), rgba(20, 18, 25, 0.2))",
		Camera:     Camera{Scale: 1.14, X: -1, Y: 3},
		Accent:     "#f6a6b0",
		Narration:  "आरा बाज़ार में राजस्थान के संगतराश, बुख़ारा के इनले शिल्पी और फ़ारस के सुलेखकार एक धुन में काम कर रहे हैं। संगमरमर की स्लैबों पर फूल खिलते हैं, लाल, फिरोज़ा और जेड पत्थरों से जड़ाऊ बेल-बूटे उभरते हैं। कारीगर हाथ में छेनी लेकर शेर-ओ-शायरी बुनते हैं, जिनमें क़ुरआन की आयतें और फूलों की कहानियाँ छिपी हैं। बारह हज़ार से अधिक हाथ एक साथ गाते हैं कि कला सीमाओं से परे है। यहाँ सीख मिलती है—संस्कृतियाँ जब साथ काम करती हैं तो पत्थर भी धड़कने लगते हैं।",
	},
	{
		ID:       "engineering",
		Title:    "Science Beneath the Marble",
		Subtitle: "Invisible strengths",
		Description: [2]string{
			"Engineers debate weights, winds, and water to keep the mausoleum floating above the river valley.",
			"Learners see how emotion anchors itself in rigorous physics.",
		},
		Facts: []Fact{
			{Label: "Foundation", Value: "22 deep wells with sal-wood platforms"},
			{Label: "Dome Height", Value: "73 m double shell for lightness"},
			{Label: "Seismic Design", Value: "Minarets lean 1.5° outward"},
		},
		Quote:      Quote{Text: "भावना की रक्षा विज्ञान से होगी।", Author: "Royal engineer"},
		Highlight:  "Physics, hydraulics, and craft keep the promise standing.",
		Duration:   43 * time.Second,
		Background: "linear-gradient(135deg, #0f181f 0%, #1c2f2d 35%, #7aa0a3 100%)",
		Overlay:    "radial-gradient(circle at 28% 22%, rgba(123, 199, 208, 0.35), transparent 58%), radial-gradient(circle at 82% 78%, rgba(15, 34, 37, 0.45), transparent 60%)",
		Texture:    "radial-gradient(circle at 16% 20%, rgba(255, 255, 255, 0.05), transparent 36%), radial-gradient(circle at 64% 26%, rgba(255, 255, 255, 0.05), transparent 42%), linear-gradient(150deg, rgba(42, 74, 78, 0.45), rgba(5, 12, 14, 0.25))",
		Camera:     Camera{Scale: 1.08, X: 3, Y: 2},
		Accent:     "#8ec5c8",
		Narration:  "भट्ठियों के पीछे इंजीनियर नींव की गहराई पर चर्चा कर रहे हैं। यमुना की मुलायम मिट्टी पर इतना भार कैसे टिकेगा? समाधान निकलता है—बावन कुओं की नींव, लाखों ईंटें और चूने से बना लचीला घोल। गुंबद को हल्का रखने के लिए भीतर दोहरी परत बनाई जाती है, जिस पर तारे जैसे लटकन चमकते हैं। मीनारें हल्की सी बाहर झुकी हैं ताकि भूकंप आने पर मकबरे को ढाल बन सकें। हर संख्यात्मक निर्णय यह बताता है कि भावनाएँ भी वैज्ञानिक सोच मांगती हैं।",
	},
	{
		ID:       "symbolism",
		Title:    "Light, Water, and Faith",
		Subtitle: "Meaning in motion",
		Description: [2]string{
			"The Charbagh garden, fountains, and calligraphy teach how architecture speaks spiritual languages.",
			"Students decode how light and proportion turn stone into metaphor.",
		},
		Facts: []Fact{
			{Label: "Paradise Layout", Value: "Charbagh quadrants meeting at water"},
			{Label: "Optics", Value: "Calligraphy scales with eye level"},
			{Label: "Color Shift", Value: "Marble blushes dawn pink to moonlit silver"},
		},
		Quote:      Quote{Text: "प्रकाश ही यहां की स्याही है।", Author: "Court scholar"},
		Highlight:  "Symbolism guides every reflection and shadow.",
		Duration:   45 * time.Second,
		Background: "linear-gradient(120deg, #1a1d29 0%, #28324a 45%, #dbe6ff 100%)",
		Overlay:    "radial-gradient(circle at 30% 28%, rgba(255, 255, 204, 0.42), transparent 60%), radial-gradient(circle at 74% 70%, rgba(40, 64, 121, 0.4), transparent 58%)",
		Texture:    "radial-gradient(circle at 24% 18%, rgba(255, 255, 255, 0.05), transparent 32%), radial-gradient(circle at 78% 26%, rgba(255, 255, 255, 0.05), transparent 40%), linear-gradient(140deg, rgba(71, 84, 146, 0.35), rgba(15, 17, 30, 0.2))",
		Camera:     Camera{Scale: 1.09, X: -2, Y: 1},
		Accent:     "#d4dcff",
		Narration:  "जब संगमरमर पर सूर्य की किरणें गिरती हैं तो पूरा परिसर समय के साथ अपना रंग बदलता है—सुबह गुलाबी, दिन में दूधिया, रात को चाँदनी नीला। सूफ़ी, पंडित और मौलवी एक साथ वास्तुशास्त्र, फ़िबोनाची और कुरआनी आयतें समझाते हैं। चार बाग़ जन्नत के चार दरवाज़ों का प्रतीक हैं और केन्द्रीय जलधारा जीवन की धारा का स्मरण कराती है। यह स्मारक सिखाता है कि आध्यात्मिकता किसी एक धर्म की विरासत नहीं, बल्कि प्रकाश, पानी और समरूपता की साझा कहानी है।",
	},
	{
		ID:       "legacy",
		Title:    "The Living Constitution",
		Subtitle: "Inheritance of wonder",
		Description: [2]string{
			"Generations later, conservationists and students carry the story forward with science and empathy.",
			"Learners end with a call to steward culture and curiosity.",
		},
		Facts: []Fact{
			{Label: "UNESCO", Value: "World Heritage inscription in 1983"},
			{Label: "Visitors", Value: "~7 million each year"},
			{Label: "Conservation", Value: "Traditional lime polishing keeps the glow"},
		},
		Quote:      Quote{Text: "धरोहर तभी जीवित रहती है जब हम उसे आगे बढ़ाते हैं।", Author: "Modern conservator"},
		Highlight:  "A charge to future guardians of history and harmony.",
		Duration:   42 * time.Second,
		Background: "linear-gradient(135deg, #0f1018 0%, #1c1f31 46%, #7a86c2 100%)",
		Overlay:    "radial-gradient(circle at 18% 32%, rgba(173, 181, 255, 0.38), transparent 58%), radial-gradient(circle at 80% 74%, rgba(25, 34, 67, 0.44), transparent 62%)",
		Texture:    "radial-gradient(circle at 14% 16%, rgba(255, 255, 255, 0.05), transparent 34%), radial-gradient(circle at 72% 22%, rgba(255, 255, 255, 0.05), transparent 42%), linear-gradient(150deg, rgba(77, 85, 140, 0.35), rgba(18, 20, 32, 0.2))",
		Camera:     Camera{Scale: 1.07, X: 0, Y: -1},
		Accent:     "#c0c6ff",
		Narration:  "सदियों बाद, जब छात्र ताजमहल के आँगन में कदम रखते हैं, उन्हें सिर्फ़ सफ़ेद संगमरमर नहीं दिखता, बल्कि सहिष्णुता, शिक्षा और कल्पना की मिसाल दिखाई देती है। औद्योगिक युग से लेकर आज तक मरम्मत करने वाले कारीगर उसी परंपरा को आगे बढ़ाते हैं। 1983 में यूनेस्को ने इसे मानवता की धरोहर घोषित किया और हर वर्ष लाखों दर्शक यहाँ प्रेरणा लेकर लौटते हैं। यही इस कहानी का संविधान है—ज्ञान, कला और संवेदनशीलता का ऐसा दस्तावेज़ जो आने वाली पीढ़ियों को साहस देता है कि वे भी सपनों को आकार दे सकते हैं।",
	},
}

// Default returns the compiled-in presentation.
func Default() *Catalog {
	return New(defaultScenes...)
}
