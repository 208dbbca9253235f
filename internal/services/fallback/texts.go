package fallback

import "github.com/TolikMuradov/AstroCalendar/internal/domain"

type dailyTexts struct {
	titles       [5]string
	descriptions map[domain.Element]string
	ritualTitle  string
	ritualSteps  []string
}

var daily = map[domain.Locale]dailyTexts{
	domain.LocaleEN: {
		titles: [5]string{"Celestial Guide", "Inner Compass", "Aura Sync", "Starlight Wisdom", "Elemental Awakening"},
		descriptions: map[domain.Element]string{
			domain.ElementFire:  "Your inner fire is burning bright. Direct this energy toward bold steps.",
			domain.ElementEarth: "Time to ground yourself. Patience and practical steps are your superpowers today.",
			domain.ElementAir:   "Thoughts flow like the wind. Keep communication channels open.",
			domain.ElementWater: "Emotions run deep like the ocean. Trust your intuition; the water knows the way.",
		},
		ritualTitle: "Light Ritual",
		ritualSteps: []string{"Close your eyes.", "Feel the light."},
	},
	domain.LocaleTR: {
		titles: [5]string{"Göklerin Rehberliği", "İçsel Pusula", "Aura Senkronu", "Yıldız Işığı", "Element Uyanışı"},
		descriptions: map[domain.Element]string{
			domain.ElementFire:  "Bugün içindeki ateş parlıyor. Enerjini yeni projelere ve cesur adımlara yönlendir.",
			domain.ElementEarth: "Köklerine dönme vakti. Pratik çözümler ve sabır bugün senin en büyük gücün.",
			domain.ElementAir:   "Fikirlerin rüzgar gibi esiyor. İletişim kanallarını açık tut, mucizeler fısıltılarda saklı.",
			domain.ElementWater: "Duyguların derin bir okyanus gibi. Sezgilerine güven, su akar yolunu bulur.",
		},
		ritualTitle: "Işık Ritüeli",
		ritualSteps: []string{"Gözlerini kapat.", "Işığı hisset."},
	},
	domain.LocaleTH: {
		titles: [5]string{"แนวทางจากท้องฟ้า", "เข็มทิศภายใน", "ซิงค์ออร่า", "ปัญญาแสงดาว", "การตื่นของธาตุ"},
		descriptions: map[domain.Element]string{
			domain.ElementFire:  "ไฟในตัวคุณลุกโชนวันนี้ จงนำพลังนี้ไปสู่ก้าวที่กล้าหาญ",
			domain.ElementEarth: "ถึงเวลาหยั่งรากให้มั่นคง ความอดทนและก้าวที่เป็นรูปธรรมคือพลังของคุณวันนี้",
			domain.ElementAir:   "ความคิดไหลเหมือนสายลม เปิดช่องทางการสื่อสารไว้เสมอ",
			domain.ElementWater: "อารมณ์ของคุณลึกเหมือนมหาสมุทร เชื่อสัญชาตญาณ น้ำย่อมรู้ทางของมัน",
		},
		ritualTitle: "พิธีแสง",
		ritualSteps: []string{"หลับตาลง", "สัมผัสแสง"},
	},
}

type yearlyTexts struct {
	themes          [5]string
	strengths       []string
	challenges      []string
	recommendations []string
}

var yearly = map[domain.Locale]yearlyTexts{
	domain.LocaleEN: {
		themes: [5]string{
			"Spiritual Expansion & New Foundations",
			"Quiet Strength & Inner Harvest",
			"Bold Beginnings Under Open Skies",
			"Healing Waters & Gentle Renewal",
			"Clarity, Courage & Aligned Purpose",
		},
		strengths:       []string{"Creativity", "Resilience", "Clarity"},
		challenges:      []string{"Impatience", "Over-analysis"},
		recommendations: []string{"Meditate", "Spend time in nature"},
	},
	domain.LocaleTR: {
		themes: [5]string{
			"Ruhsal Genişleme ve Yeni Temeller",
			"Sessiz Güç ve İçsel Hasat",
			"Açık Gökyüzü Altında Cesur Başlangıçlar",
			"Şifalı Sular ve Nazik Yenilenme",
			"Netlik, Cesaret ve Uyumlu Amaç",
		},
		strengths:       []string{"Yaratıcılık", "Dayanıklılık", "Netlik"},
		challenges:      []string{"Sabırsızlık", "Aşırı Analiz"},
		recommendations: []string{"Meditasyon yap", "Doğada vakit geçir"},
	},
	domain.LocaleTH: {
		themes: [5]string{
			"การขยายตัวทางจิตใจและรากฐานใหม่",
			"พลังเงียบและการเก็บเกี่ยวภายใน",
			"การเริ่มต้นอย่างกล้าหาญใต้ท้องฟ้ากว้าง",
			"สายน้ำแห่งการเยียวยาและการเริ่มใหม่อย่างอ่อนโยน",
			"ความชัดเจน ความกล้า และเป้าหมายที่สอดคล้อง",
		},
		strengths:       []string{"ความสร้างสรรค์", "ความยืดหยุ่น", "ความชัดเจน"},
		challenges:      []string{"ความไม่อดทน", "การวิเคราะห์มากเกินไป"},
		recommendations: []string{"ทำสมาธิ", "ใช้เวลาในธรรมชาติ"},
	},
}

// камни, напитки и цвета всегда на английском
var (
	stones = []string{"Clear Quartz", "Amethyst", "Rose Quartz", "Citrine", "Black Tourmaline", "Moonstone", "Carnelian", "Labradorite", "Jade", "Lapis Lazuli"}
	drinks = []string{"Chamomile tea", "Warm water with lemon", "Peppermint tea", "Ginger and honey infusion", "Golden milk with turmeric", "Hibiscus tea", "Cucumber mint water", "Green tea"}
	colors = []string{"White", "Lavender", "Emerald Green", "Sky Blue", "Coral", "Golden", "Royal Purple", "Silver", "Peach", "Navy Blue", "Rose", "Sage"}
)

type monthlyTexts struct {
	themes      []string
	messages    map[domain.DayType]string
	activities  map[domain.DayType]string
	stoneEnergy string // %s - название камня
	affirmation []string
	stayHomeTip string
	goOutTip    string
}

var monthly = map[domain.Locale]monthlyTexts{
	domain.LocaleEN: {
		themes: []string{
			"A month of growth and discovery, where small rituals open quiet doors to your next chapter.",
			"A gentle month for listening inward and letting your intuition set the pace of every step.",
			"A bright month of creative sparks, warm connections and steady courage to follow your heart.",
		},
		messages: map[domain.DayType]string{
			domain.DayCleansing:     "Let today be light. Release what no longer serves you and make space for fresh energy.",
			domain.DayManifestation: "Your intentions carry weight today. Speak your wish clearly and take one small step toward it.",
			domain.DayRest:          "Rest is part of the journey. Slow down and let your body and mind recover.",
			domain.DayAction:        "Momentum is on your side. Choose one task that matters and see it through with care.",
			domain.DayReflection:    "Pause and look back with kindness. Every lesson has shaped the person you are becoming.",
			domain.DaySocial:        "Connection nourishes you today. Reach out to someone who makes you feel at home.",
			domain.DayGratitude:     "Notice the small gifts around you. Gratitude turns an ordinary day into a sacred one.",
			domain.DayCreativity:    "Your imagination is awake. Let yourself play without judging the result.",
		},
		activities: map[domain.DayType]string{
			domain.DayCleansing:     "Clear one drawer or corner of your home",
			domain.DayManifestation: "Write down one intention for this month",
			domain.DayRest:          "Take an unhurried nap or an early night",
			domain.DayAction:        "Finish the task you have been postponing",
			domain.DayReflection:    "Journal for ten minutes about this week",
			domain.DaySocial:        "Call or message a friend you miss",
			domain.DayGratitude:     "List three things you are thankful for",
			domain.DayCreativity:    "Draw, sing or cook something new",
		},
		stoneEnergy: "%s steadies your energy and opens you to today's lessons.",
		affirmation: []string{"I am calm and centered.", "I trust the timing of my life.", "I welcome new beginnings.", "I am worthy of rest and joy.", "I choose love over fear."},
		stayHomeTip: "Stay home and recharge with a cozy ritual and a good book.",
		goOutTip:    "Go out and spend time in nature to refresh your spirit.",
	},
	domain.LocaleTR: {
		themes: []string{
			"Küçük ritüellerin yeni bir sayfanın kapılarını sessizce araladığı bir büyüme ve keşif ayı.",
			"İçini dinlemek ve sezgilerinin adımlarını belirlemesine izin vermek için nazik bir ay.",
			"Yaratıcı kıvılcımlar, sıcak bağlar ve kalbinin sesini izleme cesaretiyle dolu parlak bir ay.",
		},
		messages: map[domain.DayType]string{
			domain.DayCleansing:     "Bugün hafif ol. Sana hizmet etmeyeni bırak ve taze enerjiye yer aç.",
			domain.DayManifestation: "Niyetlerin bugün güçlü. Dileğini açıkça söyle ve ona doğru küçük bir adım at.",
			domain.DayRest:          "Dinlenmek yolculuğun bir parçası. Yavaşla, bedenin ve zihnin toparlansın.",
			domain.DayAction:        "Rüzgar arkanda. Önemli bir işi seç ve özenle tamamla.",
			domain.DayReflection:    "Dur ve geriye şefkatle bak. Her ders seni bugünkü sen yaptı.",
			domain.DaySocial:        "Bugün bağlar seni besliyor. Kendini evinde hissettiren birine ulaş.",
			domain.DayGratitude:     "Etrafındaki küçük hediyeleri fark et. Şükran sıradan bir günü kutsal kılar.",
			domain.DayCreativity:    "Hayal gücün uyanık. Sonucu yargılamadan oyna.",
		},
		activities: map[domain.DayType]string{
			domain.DayCleansing:     "Evinde bir çekmeceyi ya da köşeyi düzenle",
			domain.DayManifestation: "Bu ay için bir niyet yaz",
			domain.DayRest:          "Acelesiz bir şekerleme yap ya da erken uyu",
			domain.DayAction:        "Ertelediğin işi bitir",
			domain.DayReflection:    "Bu hafta hakkında on dakika günlük yaz",
			domain.DaySocial:        "Özlediğin bir arkadaşını ara",
			domain.DayGratitude:     "Minnettar olduğun üç şeyi yaz",
			domain.DayCreativity:    "Yeni bir şey çiz, söyle ya da pişir",
		},
		stoneEnergy: "%s bugün enerjini dengeler ve seni günün derslerine açar.",
		affirmation: []string{"Sakin ve dengedeyim.", "Hayatımın zamanlamasına güveniyorum.", "Yeni başlangıçları kucaklıyorum.", "Dinlenmeyi ve neşeyi hak ediyorum.", "Korku yerine sevgiyi seçiyorum."},
		stayHomeTip: "Evde kal ve sıcak bir ritüel ile güzel bir kitapla enerjini topla.",
		goOutTip:    "Dışarı çık ve ruhunu tazelemek için doğada vakit geçir.",
	},
	domain.LocaleTH: {
		themes: []string{
			"เดือนแห่งการเติบโตและการค้นพบ ที่พิธีเล็กๆ เปิดประตูสู่บทใหม่ของคุณ",
			"เดือนที่อ่อนโยนสำหรับการฟังเสียงภายในและให้สัญชาตญาณนำทาง",
			"เดือนที่สดใสด้วยประกายความคิดสร้างสรรค์ ความสัมพันธ์ที่อบอุ่น และความกล้าที่จะทำตามใจ",
		},
		messages: map[domain.DayType]string{
			domain.DayCleansing:     "ให้วันนี้เบาสบาย ปล่อยสิ่งที่ไม่จำเป็นและเปิดที่ว่างให้พลังใหม่",
			domain.DayManifestation: "ความตั้งใจของคุณมีพลังในวันนี้ พูดความปรารถนาให้ชัดและก้าวไปหนึ่งก้าว",
			domain.DayRest:          "การพักผ่อนเป็นส่วนหนึ่งของการเดินทาง ชะลอลงและให้ร่างกายได้ฟื้นตัว",
			domain.DayAction:        "จังหวะอยู่ข้างคุณ เลือกงานสำคัญหนึ่งอย่างและทำให้สำเร็จ",
			domain.DayReflection:    "หยุดและมองย้อนกลับด้วยความเมตตา ทุกบทเรียนหล่อหลอมตัวคุณ",
			domain.DaySocial:        "ความสัมพันธ์หล่อเลี้ยงคุณวันนี้ ติดต่อคนที่ทำให้คุณรู้สึกอบอุ่น",
			domain.DayGratitude:     "สังเกตของขวัญเล็กๆ รอบตัว ความกตัญญูทำให้วันธรรมดาศักดิ์สิทธิ์",
			domain.DayCreativity:    "จินตนาการของคุณตื่นแล้ว เล่นสนุกโดยไม่ตัดสินผลลัพธ์",
		},
		activities: map[domain.DayType]string{
			domain.DayCleansing:     "จัดลิ้นชักหรือมุมหนึ่งของบ้าน",
			domain.DayManifestation: "เขียนความตั้งใจหนึ่งข้อสำหรับเดือนนี้",
			domain.DayRest:          "งีบหลับสบายๆ หรือเข้านอนเร็ว",
			domain.DayAction:        "ทำงานที่เลื่อนมานานให้เสร็จ",
			domain.DayReflection:    "เขียนบันทึกสิบนาทีเกี่ยวกับสัปดาห์นี้",
			domain.DaySocial:        "โทรหาเพื่อนที่คิดถึง",
			domain.DayGratitude:     "เขียนสามสิ่งที่คุณรู้สึกขอบคุณ",
			domain.DayCreativity:    "วาดรูป ร้องเพลง หรือทำอาหารเมนูใหม่",
		},
		stoneEnergy: "%s ช่วยให้พลังของคุณมั่นคงและเปิดรับบทเรียนของวันนี้",
		affirmation: []string{"ฉันสงบและมั่นคง", "ฉันเชื่อในจังหวะชีวิตของฉัน", "ฉันยินดีต้อนรับการเริ่มต้นใหม่", "ฉันคู่ควรกับการพักผ่อนและความสุข", "ฉันเลือกความรักแทนความกลัว"},
		stayHomeTip: "อยู่บ้านและชาร์จพลังด้วยพิธีเล็กๆ กับหนังสือดีๆ สักเล่ม",
		goOutTip:    "ออกไปข้างนอกและใช้เวลากับธรรมชาติเพื่อฟื้นฟูจิตใจ",
	},
}

func init() {
	for _, l := range domain.SupportedLocales {
		d, ok := daily[l]
		if !ok {
			panic("fallback: no daily texts for " + string(l))
		}
		for _, e := range domain.Elements {
			if d.descriptions[e] == "" {
				panic("fallback: no daily description for " + string(l) + "/" + string(e))
			}
		}
		if _, ok := yearly[l]; !ok {
			panic("fallback: no yearly texts for " + string(l))
		}
		m, ok := monthly[l]
		if !ok {
			panic("fallback: no monthly texts for " + string(l))
		}
		for _, t := range domain.DayTypes {
			if m.messages[t] == "" || m.activities[t] == "" {
				panic("fallback: no monthly texts for " + string(l) + "/" + string(t))
			}
		}
	}
}
