package game

import "math/rand"

// Fixed stimulus domains. Word-based stimuli are sampled from these lists
// without replacement; the symbol tables (pegs, PAO, Dominic) are small by
// design and generators cap at their size.

var wordLists = map[string][]string{
	"common": {
		"apple", "banana", "car", "dog", "elephant", "flower", "guitar", "house",
		"island", "jacket", "kite", "lamp", "mountain", "notebook", "ocean", "piano",
		"queen", "robot", "star", "tree", "umbrella", "violin", "waterfall", "xylophone",
		"yacht", "zebra", "airplane", "bicycle", "camera", "dragon", "engine", "fire",
		"globe", "hammer", "iceberg", "jungle", "kettle", "lion", "mirror", "nest",
	},
	"objects": {
		"book", "phone", "key", "wallet", "bottle", "cup", "plate", "fork",
		"spoon", "knife", "chair", "table", "pen", "pencil", "paper", "clock",
		"watch", "glasses", "hat", "shoe", "sock", "shirt", "pants", "bag",
	},
}

// randomWords samples count distinct words from the named list. When count
// exceeds the list, the result is capped at the list size rather than
// failing; a running session is never aborted over a configuration mismatch.
func randomWords(rng *rand.Rand, count int, category string) []string {
	words, ok := wordLists[category]
	if !ok {
		words = wordLists["common"]
	}
	pool := make([]string, len(words))
	copy(pool, words)

	if count > len(pool) {
		count = len(pool)
	}
	selected := make([]string, 0, count)
	for i := 0; i < count; i++ {
		j := rng.Intn(len(pool))
		selected = append(selected, pool[j])
		pool[j] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return selected
}

// shuffledIndexes returns a Fisher-Yates permutation of [0, n).
func shuffledIndexes(rng *rand.Rand, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(n, func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
	return idx
}

type palaceLocation struct {
	ID   int
	Name string
	Icon string
}

var palaceLocations = []palaceLocation{
	{1, "Front Door", "🚪"},
	{2, "Living Room", "🛋️"},
	{3, "Kitchen", "🍳"},
	{4, "Bedroom", "🛏️"},
	{5, "Bathroom", "🚿"},
	{6, "Study Room", "📚"},
	{7, "Dining Room", "🍽️"},
	{8, "Garden", "🌻"},
	{9, "Garage", "🚗"},
	{10, "Balcony", "🌆"},
	{11, "Attic", "📦"},
	{12, "Basement", "🔦"},
}

type pegRhyme struct {
	Number int
	Rhyme  string
	Icon   string
}

var pegRhymes = []pegRhyme{
	{1, "Bun", "🍔"},
	{2, "Shoe", "👟"},
	{3, "Tree", "🌳"},
	{4, "Door", "🚪"},
	{5, "Hive", "🐝"},
	{6, "Sticks", "🥢"},
	{7, "Heaven", "☁️"},
	{8, "Gate", "🚧"},
	{9, "Wine", "🍷"},
	{10, "Hen", "🐔"},
}

type majorSound struct {
	Digit    int
	Sounds   string
	Examples string
}

var majorSounds = []majorSound{
	{0, "s, z", "Sea, Zoo"},
	{1, "t, d", "Tea, Day"},
	{2, "n", "Noah, New"},
	{3, "m", "Ma, Moon"},
	{4, "r", "Ray, Row"},
	{5, "l", "Law, Owl"},
	{6, "sh, ch", "Shoe, Cheese"},
	{7, "k, g", "Key, Go"},
	{8, "f, v", "Foe, Ivy"},
	{9, "p, b", "Pie, Bee"},
}

type paoEntry struct {
	Number string
	Person string
	Action string
	Object string
	Emoji  string
}

// Simplified PAO table: ten double-digit pairs instead of the full 00-99.
var paoTable = []paoEntry{
	{"00", "Superhero", "Flying", "Cape", "🦸"},
	{"11", "Chef", "Cooking", "Pan", "👨‍🍳"},
	{"22", "Dancer", "Dancing", "Shoes", "💃"},
	{"33", "Musician", "Playing", "Guitar", "🎸"},
	{"44", "Athlete", "Running", "Medal", "🏃"},
	{"55", "Artist", "Painting", "Brush", "🎨"},
	{"66", "Scientist", "Mixing", "Flask", "🧪"},
	{"77", "Magician", "Waving", "Wand", "🪄"},
	{"88", "Pirate", "Sailing", "Ship", "🏴‍☠️"},
	{"99", "Robot", "Beeping", "Antenna", "🤖"},
}

type dominicEntry struct {
	Digit    string
	Person   string
	Action   string
	Emoji    string
	Initials string
}

// Simplified Dominic table: one famous person per single digit.
var dominicTable = []dominicEntry{
	{"0", "Secret Agent", "Sneaking", "🕵️", "SA"},
	{"1", "Albert Einstein", "Thinking", "🧑‍🔬", "AE"},
	{"2", "Beyoncé", "Dancing", "👸", "BB"},
	{"3", "Charlie Chaplin", "Laughing", "🎩", "CC"},
	{"4", "David Beckham", "Kicking", "⚽", "DB"},
	{"5", "Elvis Presley", "Singing", "🎸", "EP"},
	{"6", "Freddie Mercury", "Performing", "🎤", "FM"},
	{"7", "Gal Gadot", "Jumping", "🦸‍♀️", "GG"},
	{"8", "Harry Potter", "Casting Spells", "🧙", "HP"},
	{"9", "Indiana Jones", "Adventuring", "🤠", "IJ"},
}

func dominicByDigit(d byte) *dominicEntry {
	for i := range dominicTable {
		if dominicTable[i].Digit[0] == d {
			return &dominicTable[i]
		}
	}
	return nil
}

type facePerson struct {
	ID      int
	Name    string
	Feature string
}

var faceRoster = []facePerson{
	{1, "Alex", "Curly Hair"},
	{2, "James", "Sharp Features"},
	{3, "Carlos", "Bright Smile"},
	{4, "Thomas", "Strong Jawline"},
	{5, "Marco", "Beard"},
	{6, "Daniel", "Square Jaw"},
	{7, "Andre", "Shaved Head"},
	{8, "Viktor", "High Forehead"},
	{9, "Kevin", "Wide Eyes"},
	{10, "Stefan", "Chiseled Face"},
	{11, "Lucas", "Thick Eyebrows"},
	{12, "Rafael", "Stubble Beard"},
}
