package taxonomy

var categories = []CategoryInfo{
	{Category: CategoryFood, Name: "Food", Color: "#4ade80", Description: "Food-related vocalizations"},
	{Category: CategoryLife, Name: "Life", Color: "#fbbf24", Description: "Life events and social calls"},
	{Category: CategoryFight, Name: "Fight", Color: "#f87171", Description: "Defensive and aggressive sounds"},
	{Category: CategorySex, Name: "Sex", Color: "#60a5fa", Description: "Mating-related vocalizations"},
	{Category: CategoryComplaint, Name: "Complaint", Color: "#f472b6", Description: "Distress and health-related sounds"},
}

var classes = []FGCClass{
	// FOOD
	{Code: "f110F", Category: CategoryFood, Definition: "Breast feeding", Vocalization: "Chomp", Description: "Kitten nursing sound", Gender: GenderFemale, SoundType: SoundTypeComplex},
	{Code: "f120Y", Category: CategoryFood, Definition: "Starving", Vocalization: "Ultrasonic", Description: "Desperate hunger cry", Gender: GenderYoung, SoundType: SoundTypeRepeated},
	{Code: "f130A", Category: CategoryFood, Definition: "Anticipation", Vocalization: "Mrrrrrr", Description: "Excited food anticipation", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f140A", Category: CategoryFood, Definition: "Hunger", Vocalization: "Meow", Description: "Standard hunger meow", Gender: GenderAdult, SoundType: SoundTypeSingle},
	{Code: "f150A", Category: CategoryFood, Definition: "Dry food", Vocalization: "Crunch", Description: "Eating dry kibble", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f160A", Category: CategoryFood, Definition: "Wet food", Vocalization: "Chaw", Description: "Eating wet food", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f170A", Category: CategoryFood, Definition: "Tasty", Vocalization: "YumYumYum", Description: "Enjoying delicious food", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f180A", Category: CategoryFood, Definition: "Drink", Vocalization: "Lip", Description: "Lapping water", Gender: GenderAdult, SoundType: SoundTypeRepeated},

	// LIFE
	{Code: "f210F", Category: CategoryLife, Definition: "Mother's call", Vocalization: "HrrrMeow", Description: "Mother calling kittens", Gender: GenderFemale, SoundType: SoundTypeComplex},
	{Code: "f215Y", Category: CategoryLife, Definition: "Pleasure", Vocalization: "Baby Purring", Description: "Kitten contentment purr", Gender: GenderYoung, SoundType: SoundTypeRepeated},
	{Code: "f220A", Category: CategoryLife, Definition: "Relaxation", Vocalization: "Adult Purring", Description: "Relaxed, happy purring", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f225A", Category: CategoryLife, Definition: "Tickling", Vocalization: "Agitated licking", Description: "Grooming sounds", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f230A", Category: CategoryLife, Definition: "Liking", Vocalization: "LikLikLik", Description: "Self-grooming licks", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f235A", Category: CategoryLife, Definition: "Deep sleep", Vocalization: "Snoring", Description: "Sleeping snore", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f240A", Category: CategoryLife, Definition: "Greeting", Vocalization: "Hrrr", Description: "Friendly greeting trill", Gender: GenderAdult, SoundType: SoundTypeSingle},
	{Code: "f245A", Category: CategoryLife, Definition: "Scratching", Vocalization: "Scratch", Description: "Scratching post sound", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f250A", Category: CategoryLife, Definition: "Urgent Call", Vocalization: "Scream", Description: "Urgent attention needed", Gender: GenderAdult, SoundType: SoundTypeSingle},
	{Code: "f255A", Category: CategoryLife, Definition: "Open the door", Vocalization: "Plea", Description: "Requesting door access", Gender: GenderAdult, SoundType: SoundTypeSingle},
	{Code: "f260A", Category: CategoryLife, Definition: "Boring waul", Vocalization: "Howl", Description: "Boredom yowl", Gender: GenderAdult, SoundType: SoundTypeSingle},
	{Code: "f265A", Category: CategoryLife, Definition: "Displeasure", Vocalization: "Grudge", Description: "Annoyed grumble", Gender: GenderAdult, SoundType: SoundTypeSingle},
	{Code: "f270A", Category: CategoryLife, Definition: "Restroom", Vocalization: "Buzz", Description: "Litter box announcement", Gender: GenderAdult, SoundType: SoundTypeSingle},
	{Code: "f275A", Category: CategoryLife, Definition: "Litter scooping", Vocalization: "Scrape", Description: "Burying waste", Gender: GenderAdult, SoundType: SoundTypeRepeated},

	// FIGHT
	{Code: "f310A", Category: CategoryFight, Definition: "Spiting", Vocalization: "MoMoMoh", Description: "Defensive spitting", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f320A", Category: CategoryFight, Definition: "Birdhunting chirp", Vocalization: "QuackQuackQuack", Description: "Chattering at prey", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f330Y", Category: CategoryFight, Definition: "Baby Growling", Vocalization: "Squeak", Description: "Kitten warning growl", Gender: GenderYoung, SoundType: SoundTypeRepeated},
	{Code: "f340A", Category: CategoryFight, Definition: "Adult Growling", Vocalization: "Roar", Description: "Deep warning growl", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f350Y", Category: CategoryFight, Definition: "Baby Hissing", Vocalization: "Ssssss", Description: "Kitten defensive hiss", Gender: GenderYoung, SoundType: SoundTypeSingle},
	{Code: "f360A", Category: CategoryFight, Definition: "Adult Hissing", Vocalization: "Ssssss", Description: "Aggressive warning hiss", Gender: GenderAdult, SoundType: SoundTypeSingle},
	{Code: "f370Y", Category: CategoryFight, Definition: "Baby Yelling", Vocalization: "Yeow", Description: "Kitten distress cry", Gender: GenderYoung, SoundType: SoundTypeSingle},
	{Code: "f380A", Category: CategoryFight, Definition: "Adult Yelling", Vocalization: "Waooo", Description: "Adult battle cry", Gender: GenderAdult, SoundType: SoundTypeSingle},
	{Code: "f390A", Category: CategoryFight, Definition: "Attack", Vocalization: "Nyaaan", Description: "Attacking scream", Gender: GenderAdult, SoundType: SoundTypeSingle},

	// SEX
	{Code: "f410M", Category: CategorySex, Definition: "Mating", Vocalization: "GmyaGmyaGmya", Description: "Male mating call", Gender: GenderMale, SoundType: SoundTypeSingle},
	{Code: "f420F", Category: CategorySex, Definition: "Desire", Vocalization: "Lust", Description: "Female in heat call", Gender: GenderFemale, SoundType: SoundTypeSingle},
	{Code: "f430F", Category: CategorySex, Definition: "Flirt", Vocalization: "False resistance", Description: "Mating play sounds", Gender: GenderFemale, SoundType: SoundTypeComplex},
	{Code: "f440F", Category: CategorySex, Definition: "Intimacy", Vocalization: "Climax", Description: "Mating completion cry", Gender: GenderFemale, SoundType: SoundTypeComplex},

	// COMPLAINT
	{Code: "f510F", Category: CategoryComplaint, Definition: "Labor", Vocalization: "Miu", Description: "Birthing sounds", Gender: GenderFemale, SoundType: SoundTypeRepeated},
	{Code: "f520A", Category: CategoryComplaint, Definition: "Throw up", Vocalization: "Puke", Description: "Vomiting sounds", Gender: GenderAdult, SoundType: SoundTypeComplex},
	{Code: "f530A", Category: CategoryComplaint, Definition: "Sneezing", Vocalization: "Achoo", Description: "Sneeze", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f540A", Category: CategoryComplaint, Definition: "Cough", Vocalization: "UghUghUgh", Description: "Coughing", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f550A", Category: CategoryComplaint, Definition: "Panting", Vocalization: "Wheeze", Description: "Labored breathing", Gender: GenderAdult, SoundType: SoundTypeRepeated},
	{Code: "f560A", Category: CategoryComplaint, Definition: "Paining", Vocalization: "Miyoou", Description: "Pain expression", Gender: GenderAdult, SoundType: SoundTypeRepeated},
}
