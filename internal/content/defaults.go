package content

import "github.com/verte-zerg/lingocheck/internal/model"

// Default returns the built-in exercise table.
func Default() Table {
	return Table{
		model.LevelA1: {
			Reading: Reading{
				Passage: "Every morning I wake up at 7 o’clock. I wash my face and brush my teeth. Then I eat breakfast. I usually have tea and toast. After breakfast, I go to school. I like mornings because they are quiet.",
				Questions: []Question{
					{Prompt: "When does the writer wake up?", Options: []string{"At 6 o’clock", "At 7 o’clock", "At 8 o’clock"}, Answer: "At 7 o’clock"},
					{Prompt: "What does the writer usually have for breakfast?", Options: []string{"Coffee and eggs", "Milk and cereal", "Tea and toast"}, Answer: "Tea and toast"},
					{Prompt: "Why does the writer like mornings?", Options: []string{"Because mornings are quiet", "Because there is no school", "Because breakfast is big"}, Answer: "Because mornings are quiet"},
				},
			},
			Speaking: Speaking{
				Prompt:    "Describe the picture in one sentence: a black cat sits in a box.",
				Reference: "A black cat is sitting in a box",
			},
			Listening: Listening{
				Script: "Mary has got a kitty! Her name is Milka. She is gray with white paws and green eyes. She is lying on the sofa.",
				Questions: []Question{
					{Prompt: "What is the kitty's name?", Options: []string{"Mary", "Milka", "Molly"}, Answer: "Milka"},
					{Prompt: "What does the kitty look like?", Options: []string{"Black with green eyes", "Gray with white paws", "White with gray paws"}, Answer: "Gray with white paws"},
					{Prompt: "What is the kitty doing?", Options: []string{"Playing in the garden", "Eating her food", "Lying on the sofa"}, Answer: "Lying on the sofa"},
				},
			},
			Pronunciation: "I have a little kitten.",
		},
		model.LevelA2: {
			Reading: Reading{
				Passage: "Tom lives in a small town near the mountains. Every morning, he walks to school with his friend Anna. They like to talk about animals.",
				Questions: []Question{
					{Prompt: "Who lives in a small town?", Options: []string{"Tom", "Anna", "Sam"}, Answer: "Tom"},
					{Prompt: "What is the town near?", Options: []string{"The sea", "Mountains", "A forest"}, Answer: "Mountains"},
					{Prompt: "Who does Tom walk to school with?", Options: []string{"His brother", "Anna", "His teacher"}, Answer: "Anna"},
				},
			},
			Speaking: Speaking{
				Prompt:    "Describe the picture in one sentence: two children walk near the mountains.",
				Reference: "Two children are walking near the mountains",
			},
			Listening: Listening{
				Script: "Tom and Anna want to go to the zoo today, because Anna loves animals and Tom wants to see the monkeys.",
				Questions: []Question{
					{Prompt: "Where do Tom and Anna want to go?", Options: []string{"Park", "Zoo", "Museum"}, Answer: "Zoo"},
					{Prompt: "What does Anna love?", Options: []string{"Animals", "Music", "Books"}, Answer: "Animals"},
					{Prompt: "What does Tom want to see?", Options: []string{"Lions", "Birds", "Monkeys"}, Answer: "Monkeys"},
				},
			},
			Pronunciation: "We are walking to the mountain village.",
		},
		model.LevelB1: {
			Reading: Reading{
				Passage: "Sarah enjoys traveling. Last summer she visited Spain, where she explored old streets, tasted traditional food, and learned a few Spanish words.",
				Questions: []Question{
					{Prompt: "Which country did Sarah visit last summer?", Options: []string{"Italy", "Spain", "France"}, Answer: "Spain"},
					{Prompt: "What traditional thing did she taste?", Options: []string{"Food", "Wine", "Coffee"}, Answer: "Food"},
					{Prompt: "Which language did she learn a few words of?", Options: []string{"Portuguese", "Italian", "Spanish"}, Answer: "Spanish"},
				},
			},
			Speaking: Speaking{
				Prompt:    "Describe the picture: a small cup on a wooden table, an open notebook next to it.",
				Reference: "A small cup is standing on a wooden table. Next to the cup, there is an open notebook",
			},
			Listening: Listening{
				Script: "Two days ago, Sarah came back from Spain. She says that the trip was amazing and memorable, but the most, Anna liked the old streets and the local food",
				Questions: []Question{
					{Prompt: "Where did Sarah come back from?", Options: []string{"Spain", "Greece", "Mexico"}, Answer: "Spain"},
					{Prompt: "What old places did Anna like?", Options: []string{"Castles", "Streets", "Churches"}, Answer: "Streets"},
					{Prompt: "What local thing did Anna like?", Options: []string{"Music", "People", "Food"}, Answer: "Food"},
				},
			},
			Pronunciation: "Traveling helps people understand the world better.",
		},
		model.LevelB2: {
			Reading: Reading{
				Passage: "Technology has changed the way people work and communicate. Many companies now allow employees to work remotely, which increases flexibility and productivity.",
				Questions: []Question{
					{Prompt: "What has changed the way people work?", Options: []string{"Education", "Technology", "Politics"}, Answer: "Technology"},
					{Prompt: "How do many employees now work?", Options: []string{"Remotely", "Part-time", "Overtime"}, Answer: "Remotely"},
					{Prompt: "What does remote work increase besides productivity?", Options: []string{"Costs", "Stress", "Flexibility"}, Answer: "Flexibility"},
				},
			},
			Speaking: Speaking{
				Prompt:    "Describe the picture: people work from home with laptops and video calls.",
				Reference: "People are working remotely using laptops and video calls",
			},
			Listening: Listening{
				Script: "John: Working from home has made my life easier. Anna: Really? John: Yes, I can manage my time better and focus more.",
				Questions: []Question{
					{Prompt: "Where does John work?", Options: []string{"Office", "Home", "Cafe"}, Answer: "Home"},
					{Prompt: "What can John manage better?", Options: []string{"Money", "Team", "Time"}, Answer: "Time"},
					{Prompt: "What can John do more?", Options: []string{"Focus", "Travel", "Sleep"}, Answer: "Focus"},
				},
			},
			Pronunciation: "Remote work improves productivity and work-life balance.",
		},
	}
}
