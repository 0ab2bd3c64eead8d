package llm

import "fmt"

// Prompt is a ready-to-send completion request
type Prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// SentencePrompt asks for one natural example sentence using word
func SentencePrompt(word string) Prompt {
	return Prompt{
		System: "You are an English tutor. Write an engaging, contextual English sentence that uses the given word. " +
			"The sentence must sound natural, be easy to understand and show how the word is used in real situations.",
		User: fmt.Sprintf(`Write one interesting English sentence using the word "%s".

Requirements:
- Natural, like everyday conversation
- Exactly one sentence
- Not too long or complicated
- Makes the meaning of the word clear
- About daily life, hobbies, school or other common situations

Reply with the sentence only, no explanation.`, word),
		Temperature: 0.7,
		MaxTokens:   100,
	}
}

// TranslationsPrompt asks for the common Indonesian translations of word, separated by semicolons
func TranslationsPrompt(word string) Prompt {
	return Prompt{
		System: "You are an expert English-Indonesian translator. An English word can have several Indonesian meanings " +
			"depending on context; give accurate translations for each.",
		User: fmt.Sprintf(`Give the Indonesian translations of the English word "%s".

Rules:
1. Give the 3-5 most common and accurate translations
2. Order them from most to least used
3. Separate them with semicolons (;)
4. Reply with the translations only, no explanation
5. Avoid technical or rare translations
6. Use simple words
7. Do not use punctuation or special characters inside a translation

Example format:
menghindari; mencegah; menghindar; menjauhi; mengelak

Translations for "%s":`, word, word),
		Temperature: 0.3,
		MaxTokens:   150,
	}
}

// DefinitionPrompt asks for a short Indonesian definition of word
func DefinitionPrompt(word string) Prompt {
	return Prompt{
		System: "You are an Indonesian language expert who explains English words in clear, simple Indonesian.",
		User: fmt.Sprintf(`Give an Indonesian definition of the English word "%s".

Requirements:
1. Correct, standard Indonesian
2. Easy for students to understand
3. Short but clear
4. Focus on the main meaning
5. Reply with the definition only

Example format:
Kemampuan atau keterampilan untuk melakukan sesuatu dengan baik.

Definition of "%s":`, word, word),
		Temperature: 0.3,
		MaxTokens:   150,
	}
}

// SentenceTranslationPrompt asks for a natural Indonesian translation of an English sentence
func SentenceTranslationPrompt(sentence string) Prompt {
	return Prompt{
		System: "You are a professional translator who translates English sentences into accurate, natural Indonesian.",
		User: fmt.Sprintf(`Translate this English sentence into Indonesian:

"%s"

Requirements:
1. Correct, standard Indonesian
2. Natural and easy to understand
3. Keep the original meaning
4. Reply with the translation only

Translation:`, sentence),
		Temperature: 0.3,
		MaxTokens:   200,
	}
}
