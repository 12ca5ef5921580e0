package taxonomy

var seedRegions = []Region{
	{Name: "North America", Cities: []string{"New York", "San Francisco", "Toronto", "Chicago", "Seattle", "Austin"}},
	{Name: "Europe", Cities: []string{"London", "Berlin", "Paris", "Amsterdam", "Madrid", "Dublin"}},
	{Name: "Asia", Cities: []string{"Singapore", "Tokyo", "Bangalore", "Shanghai", "Seoul", "Dubai"}},
	{Name: "South America", Cities: []string{"Sao Paulo", "Buenos Aires", "Bogota", "Lima", "Santiago"}},
	{Name: "Africa", Cities: []string{"Cape Town", "Nairobi", "Lagos", "Cairo", "Johannesburg"}},
	{Name: "Australia", Cities: []string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide"}},
}

var seedClusters = []Cluster{
	{
		Name: "Technology",
		Titles: []string{
			"Software Engineer", "Data Scientist", "UI/UX Designer", "DevOps Engineer",
			"Cloud Architect", "Machine Learning Engineer", "Mobile Developer", "Cybersecurity Analyst",
		},
		Skills: []string{
			"Python", "JavaScript", "Java", "SQL", "React", "AWS", "Docker", "Machine Learning",
			"C++", "Git", "Kubernetes", "Node.js", "TensorFlow", "PyTorch", "CI/CD", "Cloud Computing",
		},
	},
	{
		Name: "Business",
		Titles: []string{
			"Business Analyst", "Marketing Manager", "Financial Analyst", "Project Manager",
			"Product Manager", "Operations Manager", "Management Consultant", "Human Resources Manager",
		},
		Skills: []string{
			"Microsoft Excel", "Data Analysis", "Project Management", "Marketing", "Financial Modeling",
			"CRM Software", "SQL", "Business Intelligence", "Tableau", "PowerBI", "Google Analytics", "Budgeting",
		},
	},
	{
		Name: "Healthcare",
		Titles: []string{
			"Registered Nurse", "Physician", "Physical Therapist", "Medical Technologist",
			"Pharmacist", "Healthcare Administrator", "Biomedical Engineer", "Medical Researcher",
		},
		Skills: []string{
			"Patient Care", "Medical Terminology", "Electronic Health Records", "Clinical Assessment",
			"Medical Software", "Laboratory Techniques", "Healthcare Regulations", "Biology", "Chemistry",
		},
	},
	{
		Name: "Creative Arts",
		Titles: []string{
			"Graphic Designer", "Content Creator", "Digital Artist", "Video Editor",
			"Game Developer", "Audio Engineer", "Animator", "Creative Director",
		},
		Skills: []string{
			"Adobe Creative Suite", "Photoshop", "Illustrator", "After Effects", "Blender", "Unity",
			"Unreal Engine", "3D Modeling", "Color Theory", "Typography", "UI/UX", "Sketch",
		},
	},
	{
		Name: "Education",
		Titles: []string{
			"Teacher", "Educational Consultant", "Curriculum Developer", "School Counselor",
			"Education Technology Specialist", "Special Education Teacher", "Academic Advisor", "Instructional Designer",
		},
		Skills: []string{
			"Curriculum Development", "Educational Technology", "Classroom Management",
			"Instructional Design", "Assessment", "Learning Management Systems", "Online Course Development",
		},
	},
	{
		Name: "Science & Research",
		Titles: []string{
			"Research Scientist", "Environmental Scientist", "Laboratory Technician", "Biologist",
			"Chemist", "Physicist", "Materials Scientist", "Astrophysicist",
		},
		Skills: []string{
			"MATLAB", "R", "Scientific Writing", "Laboratory Techniques", "Data Analysis", "Research Methods",
			"Statistical Analysis", "Experimental Design", "Scientific Instrumentation", "Python",
		},
	},
}

var seedSoftSkills = []string{
	"Communication", "Teamwork", "Problem Solving", "Critical Thinking",
	"Time Management", "Leadership", "Adaptability", "Creativity",
	"Emotional Intelligence", "Conflict Resolution", "Attention to Detail",
	"Self-Motivation", "Work Ethic", "Interpersonal Skills", "Negotiation",
}

var seedTraits = []string{
	"Analytical", "Creative", "Detail-oriented", "Outgoing", "Organized",
	"Innovative", "Methodical", "People-oriented", "Task-oriented", "Adaptable",
	"Risk-taker", "Cautious", "Independent", "Collaborative", "Practical", "Visionary",
}

var seedExperience = []ExperienceBand{
	{Level: "Entry-level", Salary: SalaryRange{Min: 40000, Max: 80000}},
	{Level: "Mid-level", Salary: SalaryRange{Min: 70000, Max: 120000}},
	{Level: "Senior", Salary: SalaryRange{Min: 100000, Max: 180000}},
	{Level: "Manager", Salary: SalaryRange{Min: 120000, Max: 200000}},
	{Level: "Director", Salary: SalaryRange{Min: 150000, Max: 250000}},
	{Level: "Executive", Salary: SalaryRange{Min: 200000, Max: 400000}},
}

var seedEducation = []string{
	"High School", "Associate's Degree", "Bachelor's Degree", "Master's Degree", "PhD", "Certification",
}

var seedWorkArrangements = []string{"On-site", "Remote", "Hybrid", "Flexible"}

var seedCompanySizes = []string{
	"Startup (1-50)", "Small (51-200)", "Medium (201-1000)", "Large (1000+)", "Enterprise (10000+)",
}

var seedIndustryGrowth = []string{
	"High Growth", "Stable Growth", "Moderate Growth", "Slow Growth", "Emerging Field",
}

func init() {
	t = buildTables(tables{
		regions:          seedRegions,
		clusters:         seedClusters,
		softSkills:       seedSoftSkills,
		traits:           seedTraits,
		experience:       seedExperience,
		education:        seedEducation,
		workArrangements: seedWorkArrangements,
		companySizes:     seedCompanySizes,
		industryGrowth:   seedIndustryGrowth,
	})
}
