// Package content holds the static copy for the marketing site and the
// policy-browsing page. Nothing here touches a backend.
package content

type Profile struct {
	Name    string
	Title   string
	Tagline string
	About   string
	Email   string
	Phone   string
	City    string
}

type ExperienceEntry struct {
	Role      string
	Company   string
	StartDate string
	EndDate   string
	Bullets   []string
}

type EducationEntry struct {
	Degree      string
	Institution string
	StartDate   string
	EndDate     string
	Bullets     []string
}

type Project struct {
	Name        string
	Description string
	Link        string
}

type Service struct {
	Name        string
	Description string
}

type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

type Policy struct {
	ID          string
	Name        string
	Description string
	PhoneNumber string
}

var Me = Profile{
	Name:    "Kevin Mureithi",
	Title:   "Full-Stack Developer",
	Tagline: "I build web products and help teams hire for them.",
	About: "Software developer based in Nairobi with a focus on web " +
		"applications, from marketing pages to the data layer behind them. " +
		"This site doubles as a small job board for roles I help companies fill.",
	Email: "hello@kmureithi.dev",
	Phone: "+254 700 000 000",
	City:  "Nairobi, Kenya",
}

var Experience = []ExperienceEntry{
	{
		Role:      "Full-Stack Developer",
		Company:   "Safari Digital",
		StartDate: "Mar 2022",
		EndDate:   "Present",
		Bullets: []string{
			"Built and maintained customer-facing web applications for clients across East Africa",
			"Introduced automated deployments that cut release time from days to under an hour",
			"Mentored two junior developers through their first production launches",
		},
	},
	{
		Role:      "Junior Developer",
		Company:   "Baraka Solutions",
		StartDate: "Jan 2020",
		EndDate:   "Feb 2022",
		Bullets: []string{
			"Implemented internal dashboards used by operations and finance teams",
			"Migrated a legacy reporting tool to a maintained web stack",
		},
	},
}

var Education = []EducationEntry{
	{
		Degree:      "BSc Computer Science",
		Institution: "University of Nairobi",
		StartDate:   "Sep 2016",
		EndDate:     "Dec 2019",
		Bullets: []string{
			"Graduated with second class honours, upper division",
			"Final project: marketplace platform for agricultural produce",
		},
	},
}

var Projects = []Project{
	{
		Name:        "Harvest Market",
		Description: "Marketplace connecting smallholder farmers with urban buyers.",
		Link:        "https://github.com/kmureithi/harvest-market",
	},
	{
		Name:        "Matatu Tracker",
		Description: "Live departure boards for Nairobi matatu routes.",
		Link:        "https://github.com/kmureithi/matatu-tracker",
	},
	{
		Name:        "Duka POS",
		Description: "Offline-first point of sale for small shops.",
		Link:        "https://github.com/kmureithi/duka-pos",
	},
}

var Services = []Service{
	{Name: "Web Development", Description: "Design and build of complete web applications, front to back."},
	{Name: "Technical Hiring", Description: "Job posting and candidate screening through the job board on this site."},
	{Name: "Consulting", Description: "Architecture reviews and delivery support for small teams."},
}

var Testimonials = []Testimonial{
	{
		Quote:  "Kevin shipped our customer portal in half the time we budgeted and it has run without incident since.",
		Author: "Amina Otieno",
		Role:   "CTO, Safari Digital",
	},
	{
		Quote:  "We filled two engineering roles through his board in under a month.",
		Author: "James Kariuki",
		Role:   "Founder, Baraka Solutions",
	},
}

// Policies is static mock data; the policy page has no backend.
var Policies = []Policy{
	{
		ID:   "1",
		Name: "Senior Developer Policy",
		Description: "Comprehensive policy for senior development positions including benefits, " +
			"remote work options, and professional development.",
		PhoneNumber: "+254 700 000 001",
	},
	{
		ID:   "2",
		Name: "Marketing Manager Policy",
		Description: "Policy covering marketing management roles with flexible hours, team " +
			"collaboration benefits, and career growth opportunities.",
		PhoneNumber: "+254 700 000 002",
	},
	{
		ID:   "3",
		Name: "Product Designer Policy",
		Description: "Design-focused policy with creative freedom, collaborative environment, " +
			"and access to latest design tools and resources.",
		PhoneNumber: "+254 700 000 003",
	},
	{
		ID:   "4",
		Name: "Data Analyst Policy",
		Description: "Policy for data analytics roles featuring advanced tools access, continuous " +
			"learning programs, and competitive compensation.",
		PhoneNumber: "+254 700 000 004",
	},
	{
		ID:   "5",
		Name: "HR Specialist Policy",
		Description: "Human resources policy with focus on employee wellness, training programs, " +
			"and organizational development initiatives.",
		PhoneNumber: "+254 700 000 005",
	},
}
