package prompt

import "github.com/phrazzld/slidegen/internal/domain"

// viralHooks are few-shot examples of attention-maximizing opening lines.
var viralHooks = map[domain.Language]string{
	domain.LanguageEnglish: `EXAMPLES OF VIRAL HOOKS (use as inspiration):
- "what if I told you there's a simple way to get [RESULT]?"
- "stop scrolling if you want to discover [SECRET]"
- "imagine if you could [DESIRED OUTCOME]"
- "why does nobody talk about [TOPIC]?"
- "this will change how you see [TOPIC]"
- "everything you knew about [TOPIC] is wrong"
- "have you ever wondered why [PROBLEM]?"
- "nobody told you this yet but [TRUTH]"
- "tired of [PROBLEM]? then try this"
- "here's why 99% of [AUDIENCE] fail at [TOPIC]"`,

	domain.LanguageSpanish: `EJEMPLOS DE HOOKS VIRALES (usa como inspiración):
- "¿sabías que hay una forma sencilla de conseguir [RESULTADO]?"
- "deja de deslizar si quieres descubrir [SECRETO]"
- "¿y si te dijera que [RESULTADO] está a un solo paso?"
- "¿por qué nadie habla de [TEMA]?"
- "imagina que pudieras [RESULTADO DESEADO]"
- "esto cambiará tu forma de ver [TEMA]"
- "todo lo que sabías sobre [TEMA] es falso"
- "¿te has preguntado alguna vez por qué [PROBLEMA]?"
- "nadie te lo ha dicho todavía pero [VERDAD]"
- "¿cansado de [PROBLEMA]? entonces prueba esto"`,

	domain.LanguagePortuguese: `EXEMPLOS DE HOOKS VIRAIS (use como inspiração):
- "e se eu te dissesse que existe um jeito simples de conseguir [RESULTADO]?"
- "pare de rolar se você quer descobrir [SEGREDO]"
- "imagine se você pudesse [RESULTADO DESEJADO]"
- "por que ninguém fala sobre [TEMA]?"
- "isso vai mudar como você vê [TEMA]"
- "tudo o que você sabia sobre [TEMA] está errado"
- "você já se perguntou por que [PROBLEMA]?"
- "ninguém te contou ainda, mas [VERDADE]"`,

	domain.LanguageFrench: `EXEMPLES DE HOOKS VIRAUX (à utiliser comme inspiration) :
- "et si je te disais qu'il existe un moyen simple d'obtenir [RÉSULTAT] ?"
- "arrête de scroller si tu veux découvrir [SECRET]"
- "imagine si tu pouvais [RÉSULTAT SOUHAITÉ]"
- "pourquoi personne ne parle de [SUJET] ?"
- "ça va changer ta façon de voir [SUJET]"
- "tout ce que tu savais sur [SUJET] est faux"
- "tu t'es déjà demandé pourquoi [PROBLÈME] ?"
- "personne ne te l'a encore dit mais [VÉRITÉ]"`,

	domain.LanguageGerman: `BEISPIELE FÜR VIRALE HOOKS (als Inspiration nutzen):
- "was wäre, wenn es einen einfachen Weg zu [ERGEBNIS] gäbe?"
- "hör auf zu scrollen, wenn du [GEHEIMNIS] entdecken willst"
- "stell dir vor, du könntest [WUNSCHERGEBNIS]"
- "warum spricht niemand über [THEMA]?"
- "das wird deinen Blick auf [THEMA] verändern"
- "alles, was du über [THEMA] wusstest, ist falsch"
- "hast du dich jemals gefragt, warum [PROBLEM]?"
- "das hat dir noch niemand gesagt, aber [WAHRHEIT]"`,

	domain.LanguageItalian: `ESEMPI DI HOOK VIRALI (usali come ispirazione):
- "e se ti dicessi che esiste un modo semplice per ottenere [RISULTATO]?"
- "smetti di scorrere se vuoi scoprire [SEGRETO]"
- "immagina di poter [RISULTATO DESIDERATO]"
- "perché nessuno parla di [ARGOMENTO]?"
- "questo cambierà il tuo modo di vedere [ARGOMENTO]"
- "tutto quello che sapevi su [ARGOMENTO] è sbagliato"
- "ti sei mai chiesto perché [PROBLEMA]?"
- "nessuno te l'ha ancora detto ma [VERITÀ]"`,
}

// organicHooks are few-shot examples of educational opening lines.
var organicHooks = map[domain.Language]string{
	domain.LanguageEnglish: `EXAMPLES OF ORGANIC EDUCATIONAL HOOKS (use as inspiration):
- "3 things I learned about [TOPIC] after years of experience"
- "why [CONCEPT] actually works (explained simply)"
- "the difference between [OPTION A] and [OPTION B] nobody explains"
- "5 signs you're doing [ACTIVITY] correctly"
- "what actually happens when [PROCESS]: the science behind it"
- "common [AREA] mistakes you can easily avoid"
- "how [CONCEPT] actually works, step by step"
- "[TOPIC] lessons that took me years to learn"`,

	domain.LanguageSpanish: `EJEMPLOS DE HOOKS ORGÁNICOS EDUCATIVOS (usa como inspiración):
- "3 cosas que aprendí sobre [TEMA] después de años de experiencia"
- "por qué [CONCEPTO] funciona realmente (explicado simple)"
- "la diferencia entre [OPCIÓN A] y [OPCIÓN B] que nadie explica"
- "5 señales de que estás haciendo [ACTIVIDAD] correctamente"
- "qué pasa realmente cuando [PROCESO]: la ciencia detrás"
- "errores comunes en [ÁREA] que puedes evitar fácilmente"
- "cómo funciona realmente [CONCEPTO], paso a paso"
- "lecciones sobre [TEMA] que me tomó años aprender"`,

	domain.LanguagePortuguese: `EXEMPLOS DE HOOKS ORGÂNICOS EDUCATIVOS (use como inspiração):
- "3 coisas que aprendi sobre [TEMA] depois de anos de experiência"
- "por que [CONCEITO] realmente funciona (explicado de forma simples)"
- "a diferença entre [OPÇÃO A] e [OPÇÃO B] que ninguém explica"
- "5 sinais de que você está fazendo [ATIVIDADE] do jeito certo"
- "erros comuns em [ÁREA] que você pode evitar facilmente"
- "como [CONCEITO] realmente funciona, passo a passo"`,

	domain.LanguageFrench: `EXEMPLES DE HOOKS ÉDUCATIFS ORGANIQUES (à utiliser comme inspiration) :
- "3 choses que j'ai apprises sur [SUJET] après des années d'expérience"
- "pourquoi [CONCEPT] fonctionne vraiment (expliqué simplement)"
- "la différence entre [OPTION A] et [OPTION B] que personne n'explique"
- "5 signes que tu fais [ACTIVITÉ] correctement"
- "les erreurs courantes en [DOMAINE] faciles à éviter"
- "comment [CONCEPT] fonctionne vraiment, étape par étape"`,

	domain.LanguageGerman: `BEISPIELE FÜR ORGANISCHE, LEHRREICHE HOOKS (als Inspiration nutzen):
- "3 Dinge, die ich nach Jahren über [THEMA] gelernt habe"
- "warum [KONZEPT] wirklich funktioniert (einfach erklärt)"
- "der Unterschied zwischen [OPTION A] und [OPTION B], den niemand erklärt"
- "5 Zeichen, dass du [AKTIVITÄT] richtig machst"
- "häufige Fehler bei [BEREICH], die du leicht vermeiden kannst"
- "wie [KONZEPT] wirklich funktioniert, Schritt für Schritt"`,

	domain.LanguageItalian: `ESEMPI DI HOOK EDUCATIVI ORGANICI (usali come ispirazione):
- "3 cose che ho imparato su [ARGOMENTO] dopo anni di esperienza"
- "perché [CONCETTO] funziona davvero (spiegato semplice)"
- "la differenza tra [OPZIONE A] e [OPZIONE B] che nessuno spiega"
- "5 segnali che stai facendo [ATTIVITÀ] nel modo giusto"
- "errori comuni in [AMBITO] che puoi evitare facilmente"
- "come funziona davvero [CONCETTO], passo dopo passo"`,
}

// hookExamples returns the example block for mode and language. Unknown
// languages get the English block.
func hookExamples(mode domain.Mode, lang domain.Language) string {
	table := viralHooks
	if mode == domain.ModeOrganic {
		table = organicHooks
	}
	if block, ok := table[lang]; ok {
		return block
	}
	return table[domain.LanguageEnglish]
}
