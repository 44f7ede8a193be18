package highlight

// irregularVerbs maps a base verb to the forms matched in phrasal verbs.
// Verbs not listed here get the regular forms from verbForms.
var irregularVerbs = map[string][]string{
	"take":   {"take", "takes", "took", "taken", "taking"},
	"get":    {"get", "gets", "got", "gotten", "getting"},
	"go":     {"go", "goes", "went", "gone", "going"},
	"come":   {"come", "comes", "came", "coming"},
	"make":   {"make", "makes", "made", "making"},
	"break":  {"break", "breaks", "broke", "broken", "breaking"},
	"bring":  {"bring", "brings", "brought", "bringing"},
	"run":    {"run", "runs", "ran", "running"},
	"give":   {"give", "gives", "gave", "given", "giving"},
	"set":    {"set", "sets", "setting"},
	"cut":    {"cut", "cuts", "cutting"},
	"fall":   {"fall", "falls", "fell", "fallen", "falling"},
	"hang":   {"hang", "hangs", "hung", "hanging"},
	"hold":   {"hold", "holds", "held", "holding"},
	"keep":   {"keep", "keeps", "kept", "keeping"},
	"leave":  {"leave", "leaves", "left", "leaving"},
	"pull":   {"pull", "pulls", "pulled", "pulling"},
	"back":   {"back", "backs", "backed", "backing"},
	"look":   {"look", "looks", "looked", "looking"},
	"turn":   {"turn", "turns", "turned", "turning"},
	"call":   {"call", "calls", "called", "calling"},
	"carry":  {"carry", "carries", "carried", "carrying"},
	"cool":   {"cool", "cools", "cooled", "cooling"},
	"cover":  {"cover", "covers", "covered", "covering"},
	"crack":  {"crack", "cracks", "cracked", "cracking"},
	"cross":  {"cross", "crosses", "crossed", "crossing"},
	"die":    {"die", "dies", "died", "dying"},
	"dig":    {"dig", "digs", "dug", "digging"},
	"do":     {"do", "does", "did", "done", "doing"},
	"drag":   {"drag", "drags", "dragged", "dragging"},
	"draw":   {"draw", "draws", "drew", "drawn", "drawing"},
	"dress":  {"dress", "dresses", "dressed", "dressing"},
	"drift":  {"drift", "drifts", "drifted", "drifting"},
	"drive":  {"drive", "drives", "drove", "driven", "driving"},
	"drop":   {"drop", "drops", "dropped", "dropping"},
	"dry":    {"dry", "dries", "dried", "drying"},
	"eat":    {"eat", "eats", "ate", "eaten", "eating"},
	"ease":   {"ease", "eases", "eased", "easing"},
	"end":    {"end", "ends", "ended", "ending"},
	"face":   {"face", "faces", "faced", "facing"},
	"factor": {"factor", "factors", "factored", "factoring"},
	"fade":   {"fade", "fades", "faded", "fading"},
	"fasten": {"fasten", "fastens", "fastened", "fastening"},
	"fight":  {"fight", "fights", "fought", "fighting"},
	"figure": {"figure", "figures", "figured", "figuring"},
	"fill":   {"fill", "fills", "filled", "filling"},
	"filter": {"filter", "filters", "filtered", "filtering"},
	"find":   {"find", "finds", "found", "finding"},
	"finish": {"finish", "finishes", "finished", "finishing"},
	"fire":   {"fire", "fires", "fired", "firing"},
	"fix":    {"fix", "fixes", "fixed", "fixing"},
	"fit":    {"fit", "fits", "fitted", "fitting"},
	"grow":   {"grow", "grows", "grew", "grown", "growing"},
	"hand":   {"hand", "hands", "handed", "handing"},
	"knock":  {"knock", "knocks", "knocked", "knocking"},
	"let":    {"let", "lets", "letting"},
	"move":   {"move", "moves", "moved", "moving"},
	"pass":   {"pass", "passes", "passed", "passing"},
	"pay":    {"pay", "pays", "paid", "paying"},
	"pick":   {"pick", "picks", "picked", "picking"},
	"point":  {"point", "points", "pointed", "pointing"},
	"sit":    {"sit", "sits", "sat", "sitting"},
	"stand":  {"stand", "stands", "stood", "standing"},
	"talk":   {"talk", "talks", "talked", "talking"},
	"think":  {"think", "thinks", "thought", "thinking"},
	"throw":  {"throw", "throws", "threw", "thrown", "throwing"},
	"work":   {"work", "works", "worked", "working"},
}

// verbForms returns the forms of verb to match, lower-cased
func verbForms(verb string) []string {
	if forms, ok := irregularVerbs[verb]; ok {
		return forms
	}
	return []string{verb, verb + "s", verb + "ed", verb + "ing", verb + "es"}
}
