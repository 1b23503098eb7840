package strength

// Exercises is the built-in exercise catalog offered by the calculator
// forms.
var Exercises = []string{
	"Squat", "Bench Press", "Deadlift", "Overhead Press", "Barbell Row",
	"Pull-ups", "Dips", "Bulgarian Split Squat", "Romanian Deadlift", "Hip Thrust",
	"Incline Bench Press", "Close-Grip Bench Press", "Sumo Deadlift", "Front Squat", "Goblet Squat",
	"Lat Pulldown", "Seated Row", "Chest Fly", "Lateral Raise", "Bicep Curl",
	"Tricep Extension", "Face Pull", "Leg Press", "Leg Curl", "Leg Extension",
	"Calf Raise", "Plank", "Russian Twist", "Mountain Climber", "Burpee",
	"Kettlebell Swing", "Turkish Get-Up", "Farmer's Walk", "Box Jump", "Jump Squat",
	"Push-up", "Pike Push-up", "Handstand Push-up", "Archer Squat", "Pistol Squat",
	"Single Leg Deadlift", "Step-up", "Reverse Lunge", "Walking Lunge", "Wall Sit",
	"Glute Bridge", "Bird Dog", "Dead Bug", "Side Plank", "Bear Crawl",
}
