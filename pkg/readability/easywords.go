package readability

import "strings"

// easyWords is the lexicon behind the difficult-word heuristic: words familiar
// to young readers, drawn from the Dale-Chall list of common words. A word at
// or above the syllable threshold that is not found here (directly or via its
// singular form) counts as difficult.
var easyWords = map[string]struct{}{
	"a": {}, "able": {}, "about": {}, "above": {}, "across": {}, "act": {},
	"add": {}, "afraid": {}, "after": {}, "afternoon": {}, "again": {},
	"against": {}, "ago": {}, "agree": {}, "air": {}, "all": {}, "almost": {},
	"alone": {}, "along": {}, "already": {}, "also": {}, "always": {}, "am": {},
	"among": {}, "an": {}, "and": {}, "angry": {}, "animal": {}, "another": {},
	"answer": {}, "any": {}, "anybody": {}, "anyone": {}, "anything": {},
	"apple": {}, "are": {}, "arm": {}, "around": {}, "arrive": {}, "as": {},
	"ask": {}, "asleep": {}, "at": {}, "ate": {}, "away": {},

	"baby": {}, "back": {}, "bad": {}, "bag": {}, "ball": {}, "banana": {},
	"basket": {}, "be": {}, "bean": {}, "bear": {}, "beautiful": {},
	"became": {}, "because": {}, "become": {}, "bed": {}, "been": {},
	"before": {}, "began": {}, "begin": {}, "behind": {}, "being": {},
	"believe": {}, "bell": {}, "belong": {}, "below": {}, "beside": {},
	"best": {}, "better": {}, "between": {}, "big": {}, "bird": {},
	"birthday": {}, "bit": {}, "black": {}, "blue": {}, "board": {},
	"boat": {}, "body": {}, "book": {}, "both": {}, "bottle": {},
	"bottom": {}, "box": {}, "boy": {}, "bread": {}, "break": {},
	"breakfast": {}, "bring": {}, "brother": {}, "brought": {}, "brown": {},
	"build": {}, "burn": {}, "busy": {}, "but": {}, "butter": {}, "buy": {},
	"by": {},

	"cake": {}, "call": {}, "came": {}, "can": {}, "candy": {}, "cannot": {},
	"cap": {}, "car": {}, "card": {}, "care": {}, "careful": {}, "carry": {},
	"cat": {}, "catch": {}, "caught": {}, "chair": {}, "chance": {},
	"change": {}, "chicken": {}, "child": {}, "children": {}, "city": {},
	"class": {}, "clean": {}, "clear": {}, "climb": {}, "clock": {},
	"close": {}, "cloth": {}, "clothes": {}, "coat": {}, "cold": {},
	"color": {}, "come": {}, "cook": {}, "cookie": {}, "cool": {},
	"corn": {}, "corner": {}, "could": {}, "count": {}, "country": {},
	"cover": {}, "cow": {}, "cry": {}, "cup": {}, "cut": {},

	"dance": {}, "dark": {}, "day": {}, "dear": {}, "decide": {}, "deep": {},
	"did": {}, "die": {}, "different": {}, "dinner": {}, "dish": {}, "do": {},
	"doctor": {}, "does": {}, "dog": {}, "done": {}, "door": {}, "down": {},
	"draw": {}, "dream": {}, "dress": {}, "drink": {}, "drive": {},
	"drop": {}, "dry": {}, "during": {},

	"each": {}, "ear": {}, "early": {}, "earth": {}, "easy": {}, "eat": {},
	"egg": {}, "eight": {}, "either": {}, "else": {}, "empty": {}, "end": {},
	"enjoy": {}, "enough": {}, "even": {}, "evening": {}, "ever": {},
	"every": {}, "everybody": {}, "everyone": {}, "everything": {},
	"except": {}, "eye": {},

	"face": {}, "fall": {}, "family": {}, "far": {}, "farm": {},
	"farmer": {}, "fast": {}, "father": {}, "feed": {}, "feel": {},
	"feet": {}, "fell": {}, "felt": {}, "few": {}, "field": {}, "fight": {},
	"fill": {}, "find": {}, "fine": {}, "finger": {}, "finish": {},
	"fire": {}, "first": {}, "fish": {}, "five": {}, "fix": {}, "floor": {},
	"flower": {}, "fly": {}, "follow": {}, "food": {}, "foot": {}, "for": {},
	"forget": {}, "found": {}, "four": {}, "fox": {}, "free": {},
	"fresh": {}, "friend": {}, "from": {}, "front": {}, "fruit": {},
	"full": {}, "fun": {}, "funny": {},

	"game": {}, "garden": {}, "gave": {}, "get": {}, "girl": {}, "give": {},
	"glad": {}, "glass": {}, "go": {}, "goes": {}, "going": {}, "gold": {},
	"gone": {}, "good": {}, "got": {}, "grass": {}, "gray": {}, "great": {},
	"green": {}, "grew": {}, "ground": {}, "grow": {}, "guess": {},

	"had": {}, "hair": {}, "half": {}, "hand": {}, "happen": {},
	"happy": {}, "hard": {}, "has": {}, "hat": {}, "have": {}, "he": {},
	"head": {}, "hear": {}, "heard": {}, "heavy": {}, "hello": {},
	"help": {}, "her": {}, "here": {}, "herself": {}, "hid": {}, "hide": {},
	"high": {}, "hill": {}, "him": {}, "himself": {}, "his": {}, "hold": {},
	"hole": {}, "home": {}, "hope": {}, "horse": {}, "hot": {}, "hour": {},
	"house": {}, "how": {}, "hundred": {}, "hungry": {}, "hurry": {},
	"hurt": {},

	"i": {}, "ice": {}, "if": {}, "in": {}, "inside": {}, "into": {},
	"is": {}, "it": {}, "its": {}, "itself": {},

	"job": {}, "jump": {}, "just": {},

	"keep": {}, "kept": {}, "kind": {}, "king": {}, "kitchen": {},
	"knew": {}, "know": {},

	"lady": {}, "land": {}, "large": {}, "last": {}, "late": {},
	"laugh": {}, "lazy": {}, "learn": {}, "leave": {}, "left": {},
	"leg": {}, "let": {}, "letter": {}, "light": {}, "like": {},
	"line": {}, "lion": {}, "listen": {}, "little": {}, "live": {},
	"long": {}, "look": {}, "lost": {}, "lot": {}, "loud": {}, "love": {},
	"low": {}, "lunch": {},

	"made": {}, "make": {}, "man": {}, "many": {}, "may": {}, "maybe": {},
	"me": {}, "mean": {}, "meat": {}, "meet": {}, "men": {}, "met": {},
	"middle": {}, "might": {}, "milk": {}, "mine": {}, "minute": {},
	"miss": {}, "money": {}, "monkey": {}, "month": {}, "moon": {},
	"more": {}, "morning": {}, "most": {}, "mother": {}, "mouse": {},
	"mouth": {}, "move": {}, "much": {}, "music": {}, "must": {}, "my": {},
	"myself": {},

	"name": {}, "near": {}, "neck": {}, "need": {}, "never": {}, "new": {},
	"next": {}, "nice": {}, "night": {}, "nine": {}, "no": {},
	"nobody": {}, "noise": {}, "none": {}, "noon": {}, "nor": {},
	"not": {}, "nothing": {}, "now": {}, "number": {},

	"of": {}, "off": {}, "often": {}, "oh": {}, "old": {}, "on": {},
	"once": {}, "one": {}, "only": {}, "open": {}, "or": {}, "orange": {},
	"other": {}, "our": {}, "out": {}, "outside": {}, "over": {}, "own": {},

	"page": {}, "paint": {}, "pair": {}, "paper": {}, "part": {},
	"party": {}, "pass": {}, "past": {}, "pay": {}, "penny": {},
	"people": {}, "perhaps": {}, "person": {}, "pick": {}, "picture": {},
	"piece": {}, "pig": {}, "place": {}, "plant": {}, "play": {},
	"please": {}, "pocket": {}, "point": {}, "poor": {}, "pretty": {},
	"pull": {}, "push": {}, "put": {},

	"queen": {}, "quick": {}, "quiet": {}, "quite": {},

	"rabbit": {}, "race": {}, "rain": {}, "ran": {}, "reach": {},
	"read": {}, "ready": {}, "real": {}, "red": {}, "remember": {},
	"rest": {}, "ride": {}, "right": {}, "ring": {}, "river": {},
	"road": {}, "rock": {}, "roll": {}, "roof": {}, "room": {},
	"round": {}, "run": {},

	"sad": {}, "said": {}, "salt": {}, "same": {}, "sang": {}, "sat": {},
	"saw": {}, "say": {}, "school": {}, "sea": {}, "seat": {},
	"second": {}, "see": {}, "seed": {}, "seem": {}, "seen": {},
	"sell": {}, "send": {}, "sent": {}, "seven": {}, "shake": {},
	"shall": {}, "she": {}, "sheep": {}, "shine": {}, "ship": {},
	"shoe": {}, "shop": {}, "short": {}, "should": {}, "show": {},
	"sick": {}, "side": {}, "sing": {}, "sister": {}, "sit": {}, "six": {},
	"sky": {}, "sleep": {}, "slow": {}, "small": {}, "smell": {},
	"smile": {}, "snow": {}, "so": {}, "soft": {}, "sold": {}, "some": {},
	"somebody": {}, "someone": {}, "something": {}, "sometimes": {},
	"song": {}, "soon": {}, "sound": {}, "speak": {}, "spell": {},
	"spend": {}, "spot": {}, "spring": {}, "stand": {}, "start": {},
	"stay": {}, "step": {}, "stick": {}, "still": {}, "stone": {},
	"stood": {}, "stop": {}, "store": {}, "story": {}, "street": {},
	"strong": {}, "such": {}, "sudden": {}, "sugar": {}, "summer": {},
	"sun": {}, "supper": {}, "sure": {}, "sweet": {}, "swim": {},

	"table": {}, "tail": {}, "take": {}, "talk": {}, "tall": {},
	"teach": {}, "teacher": {}, "tell": {}, "ten": {}, "than": {},
	"thank": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "thing": {},
	"think": {}, "third": {}, "this": {}, "those": {}, "though": {},
	"thought": {}, "three": {}, "through": {}, "throw": {}, "till": {},
	"time": {}, "tiny": {}, "to": {}, "today": {}, "together": {},
	"told": {}, "tomorrow": {}, "too": {}, "took": {}, "top": {},
	"town": {}, "toy": {}, "train": {}, "tree": {}, "true": {}, "try": {},
	"turn": {}, "twelve": {}, "twenty": {}, "two": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "visit": {}, "voice": {},

	"wait": {}, "wake": {}, "walk": {}, "want": {}, "warm": {}, "was": {},
	"wash": {}, "watch": {}, "water": {}, "way": {}, "we": {}, "wear": {},
	"week": {}, "well": {}, "went": {}, "were": {}, "wet": {}, "what": {},
	"wheel": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"white": {}, "who": {}, "whole": {}, "whose": {}, "why": {},
	"wide": {}, "will": {}, "win": {}, "wind": {}, "window": {},
	"winter": {}, "wish": {}, "with": {}, "without": {}, "woman": {},
	"women": {}, "wonder": {}, "wood": {}, "word": {}, "work": {},
	"world": {}, "would": {}, "write": {}, "wrong": {},

	"yard": {}, "year": {}, "yellow": {}, "yes": {}, "yesterday": {},
	"yet": {}, "you": {}, "young": {}, "your": {},
}

// isEasyWord checks the lexicon for the word itself and, for plural or
// third-person forms, its bare singular.
func isEasyWord(word string) bool {
	if _, ok := easyWords[word]; ok {
		return true
	}
	if trimmed := strings.TrimSuffix(word, "s"); trimmed != word {
		if _, ok := easyWords[trimmed]; ok {
			return true
		}
	}
	return false
}
