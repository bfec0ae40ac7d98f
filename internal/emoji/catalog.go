package emoji

// catalog is the curated pick list, grouped loosely by theme. Order here is
// the canonical grid order when no query is active.
var catalog = []Emoji{
	{"😀", "grinning face", "smile happy"},
	{"😂", "face with tears of joy", "laugh lol funny"},
	{"😅", "grinning face with sweat", "relief nervous"},
	{"😊", "smiling face with smiling eyes", "blush happy"},
	{"😍", "smiling face with heart-eyes", "love crush"},
	{"😎", "smiling face with sunglasses", "cool"},
	{"🤔", "thinking face", "hmm wondering"},
	{"😴", "sleeping face", "tired zzz"},
	{"😭", "loudly crying face", "sad sob"},
	{"😡", "pouting face", "angry mad"},
	{"🙄", "face with rolling eyes", "eyeroll whatever"},
	{"🤯", "exploding head", "mind blown"},
	{"🥳", "partying face", "celebration birthday"},
	{"😇", "smiling face with halo", "innocent angel"},
	{"🤗", "smiling face with open hands", "hug"},
	{"🫠", "melting face", "hot embarrassed"},
	{"👍", "thumbs up", "approve yes ok"},
	{"👎", "thumbs down", "disapprove no"},
	{"👏", "clapping hands", "applause bravo"},
	{"🙏", "folded hands", "please thanks pray"},
	{"👋", "waving hand", "hello bye"},
	{"🤝", "handshake", "deal agreement"},
	{"💪", "flexed biceps", "strong gym"},
	{"🤞", "crossed fingers", "luck hope"},
	{"✌️", "victory hand", "peace"},
	{"🫡", "saluting face", "respect ack"},
	{"❤️", "red heart", "love"},
	{"💔", "broken heart", "sad breakup"},
	{"🔥", "fire", "lit hot"},
	{"✨", "sparkles", "shiny new"},
	{"⭐", "star", "favorite"},
	{"💯", "hundred points", "perfect score"},
	{"🎉", "party popper", "celebration congrats"},
	{"🎂", "birthday cake", "party"},
	{"🎁", "wrapped gift", "present"},
	{"🚀", "rocket", "launch ship fast"},
	{"⚡", "high voltage", "lightning fast"},
	{"💡", "light bulb", "idea"},
	{"🧠", "brain", "smart think"},
	{"👀", "eyes", "look watching"},
	{"💀", "skull", "dead lol"},
	{"🤖", "robot", "bot ai"},
	{"👻", "ghost", "boo spooky"},
	{"🐛", "bug", "insect defect"},
	{"🐢", "turtle", "slow"},
	{"🐙", "octopus", "tentacle"},
	{"🦄", "unicorn", "magic rare"},
	{"🌈", "rainbow", "pride color"},
	{"☀️", "sun", "sunny weather"},
	{"🌙", "crescent moon", "night"},
	{"🌧️", "cloud with rain", "weather rainy"},
	{"❄️", "snowflake", "cold winter"},
	{"🍕", "pizza", "food slice"},
	{"🍔", "hamburger", "food burger"},
	{"🍣", "sushi", "food japanese"},
	{"🌮", "taco", "food mexican"},
	{"☕", "hot beverage", "coffee tea"},
	{"🍺", "beer mug", "drink cheers"},
	{"🏠", "house", "home"},
	{"🚗", "automobile", "car drive"},
	{"✈️", "airplane", "flight travel"},
	{"⏰", "alarm clock", "time wake"},
	{"📅", "calendar", "date schedule"},
	{"📌", "pushpin", "pin important"},
	{"📝", "memo", "note write"},
	{"💻", "laptop", "computer code"},
	{"⌨️", "keyboard", "typing"},
	{"🔧", "wrench", "fix tool"},
	{"🔒", "locked", "secure private"},
	{"✅", "check mark button", "done yes complete"},
	{"❌", "cross mark", "no wrong delete"},
	{"⚠️", "warning", "caution alert"},
	{"❓", "red question mark", "question help"},
}

var byChar = func() map[string]Emoji {
	m := make(map[string]Emoji, len(catalog))
	for _, e := range catalog {
		m[e.Char] = e
	}
	return m
}()
