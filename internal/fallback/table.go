package fallback

import "github.com/phrazzld/slidegen/internal/domain"

var demoTable = map[key]entry{
	{domain.FormatTop5Tips, domain.LanguageEnglish}: {
		title: "5 bedtime tricks that actually work",
		hooks: [3]string{
			"what if bedtime took ten minutes instead of an hour?",
			"most parents get bedtime backwards",
			"5 tiny changes that end bedtime battles",
		},
		slides: [5]string{
			"tip 1: start winding down 30 minutes before lights out, every single night",
			"tip 2: use the same opening line for every story so their brain learns the cue",
			"tip 3: let your child pick one detail of the story, like the setting or the sidekick",
			"tip 4: keep screens out of the bedroom for the last hour of the day",
			"tip 5: end every story with the hero falling asleep somewhere cozy",
		},
		cta:         "which one are you trying tonight? tell me in the comments",
		searchTerms: []string{"parent reading bedtime story", "child asleep in cozy bed", "dim warm bedroom lamp", "open picture book", "toddler in pajamas", "night sky through window"},
	},
	{domain.FormatCommonErrors, domain.LanguageEnglish}: {
		title: "bedtime mistakes that keep kids awake",
		hooks: [3]string{
			"if bedtime is a fight every night, check this list",
			"nobody warned me about these bedtime mistakes",
			"you're probably making mistake number 3",
		},
		slides: [5]string{
			"mistake 1: reading the most exciting book last, which wakes their brain up",
			"mistake 2: changing the routine every night so nothing signals sleep",
			"mistake 3: negotiating one more story, which teaches them to keep negotiating",
			"mistake 4: bright overhead lights right up until lights out",
			"mistake 5: rushing, because kids can feel when you want them asleep fast",
		},
		cta:         "which of these surprised you most?",
		searchTerms: []string{"tired parent at bedtime", "child refusing to sleep", "bright bedroom lights", "stack of kids books", "calm bedtime routine"},
	},
	{domain.FormatRecommendations, domain.LanguageEnglish}: {
		title: "bedtime helpers worth having at home",
		hooks: [3]string{
			"the bedtime helpers I'd buy again in a heartbeat",
			"these made our evenings so much calmer",
			"what actually helps kids wind down",
		},
		slides: [5]string{
			"a warm, dimmable night light that stays on low all night",
			"a short stack of calm picture books you rotate weekly",
			"a simple visual routine chart your child can check off",
			"a favorite soft toy that only comes out at bedtime",
			"a quiet white noise machine to cover household sounds",
		},
		cta:         "what would you add to this list?",
		searchTerms: []string{"warm night light", "picture books on shelf", "bedtime routine chart", "plush toy in bed", "white noise machine", "cozy kids bedroom"},
	},
	{domain.FormatBeforeAfter, domain.LanguageEnglish}: {
		title: "from two hour bedtimes to fifteen minutes",
		hooks: [3]string{
			"our bedtime used to take two hours. now it takes fifteen minutes",
			"before and after one small bedtime change",
			"what changed when we stopped fighting bedtime",
		},
		slides: [5]string{
			"before: tears, one more story, and getting out of bed ten times",
			"we tried earlier bedtimes and stricter rules, and nothing stuck",
			"then we made her the main character of every bedtime story",
			"after: she asks to go to bed and falls asleep mid-story",
			"the difference was connection, not discipline",
		},
		cta:         "what's your bedtime like right now?",
		searchTerms: []string{"child crying at bedtime", "exhausted parents on couch", "happy child in bed", "parent telling story", "peaceful sleeping child"},
	},
	{domain.FormatMyths, domain.LanguageEnglish}: {
		title: "bedtime myths parents still believe",
		hooks: [3]string{
			"everything you were told about bedtime is only half true",
			"myth: tired kids fall asleep faster",
			"let's bust some bedtime myths",
		},
		slides: [5]string{
			"myth: a later bedtime makes them sleep in. fact: it usually means earlier wake ups",
			"myth: any story works. fact: exciting plots keep little brains buzzing",
			"myth: routines are rigid. fact: they make kids feel safe enough to relax",
			"myth: older kids don't need stories. fact: connection matters at every age",
			"myth: sleep problems are just a phase. fact: small habits change them quickly",
		},
		cta:         "which myth did you believe? be honest",
		searchTerms: []string{"question mark over bed", "child yawning", "parent and child reading", "alarm clock at night", "calm bedroom scene"},
	},
	{domain.FormatBeginner, domain.LanguageEnglish}: {
		title: "a beginner's guide to stress free bedtime",
		hooks: [3]string{
			"new to bedtime routines? start here",
			"the simplest bedtime routine that works",
			"how to build a bedtime routine from scratch",
		},
		slides: [5]string{
			"step 1: pick a fixed bedtime and protect it",
			"step 2: start a 30 minute wind down with bath, pajamas and dim lights",
			"step 3: choose calm stories without monsters or cliffhangers",
			"step 4: make it personal so your child sees themselves in the story",
			"step 5: repeat the same routine every night for two weeks before judging it",
		},
		cta:         "what's the first step you'll start with?",
		searchTerms: []string{"bath time toddler", "child in pajamas", "dim bedroom lights", "parent reading softly", "bedtime checklist"},
	},
	{defaultKey, domain.LanguageEnglish}: {
		title: "the bedtime routine that changed everything",
		hooks: [3]string{
			"this one change turned our chaotic bedtime into family time",
			"what if bedtime was the best part of the day?",
			"the bedtime routine nobody talks about",
		},
		slides: [5]string{
			"we stopped fighting over which book to read and started making stories together",
			"our kids get to be the hero of a new adventure every night",
			"each story ends with a small lesson we chose together",
			"no more read it again tantrums, because every story is new",
			"bedtime went from the hardest part of the day to the one we look forward to",
		},
		cta:         "how does bedtime go in your house?",
		searchTerms: []string{"family reading together", "child smiling in bed", "storybook illustrations", "cozy evening at home", "parent tucking in child"},
	},

	{domain.FormatTop5Tips, domain.LanguageSpanish}: {
		title: "5 trucos para la hora de dormir que funcionan",
		hooks: [3]string{
			"¿y si la hora de dormir durara diez minutos?",
			"la mayoría de los padres lo hace al revés",
			"5 cambios pequeños que terminan con las peleas antes de dormir",
		},
		slides: [5]string{
			"truco 1: empieza a relajar el ambiente 30 minutos antes de apagar la luz",
			"truco 2: usa la misma frase para empezar cada cuento",
			"truco 3: deja que tu hijo elija un detalle de la historia",
			"truco 4: nada de pantallas en la última hora del día",
			"truco 5: termina cada cuento con el protagonista durmiéndose tranquilo",
		},
		cta:         "¿cuál vas a probar esta noche? cuéntamelo en comentarios",
		searchTerms: []string{"parent reading bedtime story", "child asleep in cozy bed", "dim warm bedroom lamp", "open picture book", "toddler in pajamas"},
	},
	{domain.FormatMyths, domain.LanguageSpanish}: {
		title: "mitos sobre la hora de dormir",
		hooks: [3]string{
			"todo lo que te dijeron sobre dormir a los niños es medio cierto",
			"mito: un niño cansado se duerme antes",
			"vamos a desmontar algunos mitos",
		},
		slides: [5]string{
			"mito: acostarlos tarde hace que duerman más. realidad: suelen despertarse antes",
			"mito: cualquier cuento sirve. realidad: las historias emocionantes los activan",
			"mito: la rutina es rígida. realidad: les da seguridad para relajarse",
			"mito: los mayores no necesitan cuentos. realidad: la conexión importa siempre",
			"mito: es solo una etapa. realidad: pequeños hábitos lo cambian rápido",
		},
		cta:         "¿qué mito te creías? sé sincero",
		searchTerms: []string{"child yawning", "parent and child reading", "alarm clock at night", "calm bedroom scene", "question mark over bed"},
	},
	{defaultKey, domain.LanguageSpanish}: {
		title: "la rutina de noche que lo cambió todo",
		hooks: [3]string{
			"este cambio convirtió nuestras noches caóticas en tiempo en familia",
			"¿y si la hora de dormir fuera el mejor momento del día?",
			"la rutina de noche de la que nadie habla",
		},
		slides: [5]string{
			"dejamos de pelear por qué libro leer y empezamos a inventar cuentos juntos",
			"nuestros hijos son los protagonistas de una aventura nueva cada noche",
			"cada historia termina con una pequeña lección elegida entre todos",
			"se acabaron las rabietas de otra vez, porque cada cuento es nuevo",
			"la hora de dormir pasó de ser la más difícil a la más esperada",
		},
		cta:         "¿cómo es la hora de dormir en tu casa?",
		searchTerms: []string{"family reading together", "child smiling in bed", "storybook illustrations", "cozy evening at home", "parent tucking in child"},
	},

	{defaultKey, domain.LanguagePortuguese}: {
		title: "a rotina da noite que mudou tudo",
		hooks: [3]string{
			"essa mudança transformou nossas noites caóticas em tempo em família",
			"e se a hora de dormir fosse a melhor parte do dia?",
			"a rotina da noite que ninguém comenta",
		},
		slides: [5]string{
			"paramos de brigar por qual livro ler e começamos a inventar histórias juntos",
			"nossos filhos são os heróis de uma aventura nova toda noite",
			"cada história termina com uma pequena lição escolhida por todos",
			"acabaram as birras de lê de novo, porque cada história é nova",
			"a hora de dormir virou o momento mais esperado do dia",
		},
		cta:         "como é a hora de dormir na sua casa?",
		searchTerms: []string{"family reading together", "child smiling in bed", "storybook illustrations", "cozy evening at home", "parent tucking in child"},
	},
	{defaultKey, domain.LanguageFrench}: {
		title: "la routine du soir qui a tout changé",
		hooks: [3]string{
			"ce petit changement a transformé nos soirées chaotiques",
			"et si l'heure du coucher devenait le meilleur moment de la journée ?",
			"la routine du soir dont personne ne parle",
		},
		slides: [5]string{
			"on a arrêté de se disputer pour choisir un livre et on invente des histoires ensemble",
			"nos enfants sont les héros d'une nouvelle aventure chaque soir",
			"chaque histoire se termine par une petite leçon choisie ensemble",
			"fini les crises pour encore une histoire, chaque histoire est nouvelle",
			"le coucher est devenu le moment le plus attendu de la journée",
		},
		cta:         "comment se passe le coucher chez vous ?",
		searchTerms: []string{"family reading together", "child smiling in bed", "storybook illustrations", "cozy evening at home", "parent tucking in child"},
	},
	{defaultKey, domain.LanguageGerman}: {
		title: "die Abendroutine, die alles verändert hat",
		hooks: [3]string{
			"diese kleine Änderung hat unsere chaotischen Abende verwandelt",
			"was wäre, wenn die Schlafenszeit der schönste Moment des Tages wäre?",
			"die Abendroutine, über die niemand spricht",
		},
		slides: [5]string{
			"wir streiten nicht mehr über das Buch, wir erfinden Geschichten gemeinsam",
			"unsere Kinder sind jeden Abend die Helden eines neuen Abenteuers",
			"jede Geschichte endet mit einer kleinen Lektion, die wir zusammen wählen",
			"kein Theater mehr um noch einmal, denn jede Geschichte ist neu",
			"die Schlafenszeit ist jetzt der Moment, auf den sich alle freuen",
		},
		cta:         "wie läuft die Schlafenszeit bei euch?",
		searchTerms: []string{"family reading together", "child smiling in bed", "storybook illustrations", "cozy evening at home", "parent tucking in child"},
	},
	{defaultKey, domain.LanguageItalian}: {
		title: "la routine serale che ha cambiato tutto",
		hooks: [3]string{
			"questo piccolo cambiamento ha trasformato le nostre serate caotiche",
			"e se l'ora della nanna diventasse il momento migliore della giornata?",
			"la routine serale di cui nessuno parla",
		},
		slides: [5]string{
			"abbiamo smesso di litigare sul libro da leggere e inventiamo storie insieme",
			"i nostri figli sono gli eroi di una nuova avventura ogni sera",
			"ogni storia finisce con una piccola lezione scelta insieme",
			"niente più capricci per ancora una, perché ogni storia è nuova",
			"l'ora della nanna è diventata il momento più atteso della giornata",
		},
		cta:         "com'è l'ora della nanna a casa vostra?",
		searchTerms: []string{"family reading together", "child smiling in bed", "storybook illustrations", "cozy evening at home", "parent tucking in child"},
	},
}
