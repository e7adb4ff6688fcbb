package query

const shakespeareBio = "William Shakespeare (26 April 1564 - 23 April 1616) was an " +
	"English poet, playwright, and actor, widely regarded as the greatest " +
	"writer in the English language and the world's pre-eminent dramatist."

// trivia builds an intent that answers a fixed string whenever keyword
// appears anywhere in the query.
func trivia(name Intent, keyword, answer string) intent {
	return intent{
		name:   name,
		match:  func(in *input) bool { return in.contains(keyword) },
		handle: func(*input) string { return answer },
	}
}
