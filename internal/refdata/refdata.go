// Package refdata holds the static reference tables used for mock lead
// generation and geography/classification lookups: Indian states and cities,
// business types and subcategories, company-name templates, person-name
// pools, per-type professions and product interests, and lead sources.
package refdata

import "sort"

// StatesCities maps each state to its known cities.
var StatesCities = map[string][]string{
	"Maharashtra":    {"Mumbai", "Pune", "Nagpur", "Thane", "Nashik", "Aurangabad", "Solapur", "Amravati", "Kolhapur", "Sangli"},
	"Delhi":          {"New Delhi", "North Delhi", "South Delhi", "East Delhi", "West Delhi", "Central Delhi", "Shahdara", "Dwarka"},
	"Karnataka":      {"Bengaluru", "Mysuru", "Hubli", "Mangaluru", "Belgaum", "Gulbarga", "Davanagere", "Shimoga", "Tumkur", "Udupi"},
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem", "Tirunelveli", "Erode", "Vellore", "Thoothukudi", "Dindigul"},
	"Uttar Pradesh":  {"Lucknow", "Kanpur", "Agra", "Varanasi", "Meerut", "Prayagraj", "Ghaziabad", "Aligarh", "Bareilly", "Moradabad"},
	"Gujarat":        {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar", "Junagadh", "Gandhinagar", "Anand", "Navsari"},
	"West Bengal":    {"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri", "Bardhaman", "Malda", "Kharagpur", "Darjeeling", "Haldia"},
	"Telangana":      {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar", "Khammam", "Ramagundam", "Mahbubnagar", "Nalgonda", "Adilabad", "Suryapet"},
	"Rajasthan":      {"Jaipur", "Jodhpur", "Udaipur", "Kota", "Bikaner", "Ajmer", "Bhilwara", "Alwar", "Sikar", "Bharatpur"},
	"Kerala":         {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam", "Palakkad", "Alappuzha", "Kannur", "Kottayam", "Malappuram"},
	"Andhra Pradesh": {"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Kurnool", "Rajahmundry", "Tirupati", "Kakinada", "Kadapa", "Anantapur"},
	"Punjab":         {"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda", "Mohali", "Pathankot", "Hoshiarpur", "Batala", "Moga"},
	"Haryana":        {"Faridabad", "Gurgaon", "Panipat", "Ambala", "Yamunanagar", "Rohtak", "Hisar", "Karnal", "Sonipat", "Panchkula"},
	"Madhya Pradesh": {"Indore", "Bhopal", "Jabalpur", "Gwalior", "Ujjain", "Sagar", "Dewas", "Satna", "Ratlam", "Rewa"},
	"Bihar":          {"Patna", "Gaya", "Bhagalpur", "Muzaffarpur", "Darbhanga", "Arrah", "Begusarai", "Chhapra", "Katihar", "Munger"},
}

// BusinessTypes maps each business type to its subcategories.
var BusinessTypes = map[string][]string{
	"Educational": {
		"Schools", "Colleges", "Universities", "Coaching Centers", "Tutoring Services",
		"Vocational Training", "Language Institutes", "Special Education", "Preschools", "Online Education",
	},
	"Industrial": {
		"Manufacturing", "Automotive", "Electronics", "Textiles", "Chemicals",
		"Pharmaceuticals", "Food Processing", "Mining", "Construction", "Energy",
	},
	"Technology": {
		"Software Development", "IT Services", "Web Development", "Mobile App Development", "Cloud Services",
		"Cybersecurity", "Data Analytics", "Artificial Intelligence", "IoT Solutions", "Blockchain",
	},
	"Healthcare": {
		"Hospitals", "Clinics", "Diagnostic Centers", "Pharmacies", "Medical Equipment",
		"Telemedicine", "Mental Health", "Elderly Care", "Rehabilitation", "Alternative Medicine",
	},
	"Retail": {
		"Supermarkets", "Department Stores", "Clothing", "Electronics Stores", "Furniture",
		"Jewelry", "Bookstores", "Sports Equipment", "Home Improvement", "E-commerce",
	},
	"Hospitality": {
		"Hotels", "Restaurants", "Cafes", "Catering", "Event Management",
		"Travel Agencies", "Tour Operators", "Resorts", "Spas", "Nightclubs",
	},
	"Financial": {
		"Banks", "Insurance", "Investment Firms", "Accounting Services", "Tax Consultants",
		"Financial Advisors", "Credit Unions", "Microfinance", "Payment Processing", "Wealth Management",
	},
}

// CompanyNameTemplates holds per-type name templates. {city} and {name} are
// replaced with the target city and a randomly chosen honorific word.
var CompanyNameTemplates = map[string][]string{
	"Educational": {
		"{city} International School", "{city} Public School", "{name} Academy", "St. {name}'s School",
		"Modern {city} School", "{name} College", "{city} University", "{name} Institute of Technology",
		"{city} Educational Society", "Global Education {city}",
	},
	"Industrial": {
		"{name} Industries", "{city} Manufacturing Co.", "{name} Engineering Works", "{city} Industrial Solutions",
		"{name} Fabrication", "{city} Steel", "{name} Automotive", "{city} Chemicals",
		"{name} Textiles", "Modern {city} Industries",
	},
	"Technology": {
		"{name} Technologies", "{city} Software Solutions", "{name} IT Services", "{city} Digital",
		"{name} Tech", "{city} Innovations", "{name} Systems", "{city} Infosystems",
		"{name} Computing", "Next Gen {city} Tech",
	},
	"Healthcare": {
		"{city} General Hospital", "{name} Medical Center", "{city} Healthcare", "{name} Clinic",
		"{city} Diagnostics", "{name} Wellness", "{city} Pharmacy", "{name} Health Services",
		"{city} Medical Equipment", "Care {name} Hospital",
	},
	"Retail": {
		"{name} Retail", "{city} Supermarket", "{name} Stores", "{city} Shopping Center",
		"{name} Mart", "{city} Fashion", "{name} Electronics", "{city} Furniture",
		"{name} Jewelers", "Modern {city} Retail",
	},
	"Hospitality": {
		"Hotel {name}", "{city} Resort", "{name} Restaurant", "{city} Catering",
		"{name} Cafe", "{city} Travels", "{name} Events", "{city} Tourism",
		"{name} Hospitality", "Grand {city} Hotel",
	},
	"Financial": {
		"{name} Finance", "{city} Bank", "{name} Insurance", "{city} Investments",
		"{name} Financial Services", "{city} Accounting", "{name} Tax Consultants", "{city} Wealth Management",
		"{name} Capital", "Secure {city} Finance",
	},
}

// HonorificWords fill the {name} placeholder in company-name templates.
var HonorificWords = []string{
	"Royal", "Global", "National", "Premier", "Elite", "Supreme", "Universal", "Imperial", "Prestige", "Excellence",
}

// FirstNames and LastNames form contact-person name pairs.
var FirstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Vihaan", "Arjun", "Reyansh", "Ayaan", "Atharva", "Krishna", "Ishaan",
	"Shaurya", "Advait", "Dhruv", "Kabir", "Ritvik", "Aarush", "Kayaan", "Darsh", "Veer", "Samar",
	"Aanya", "Aadhya", "Aarna", "Ananya", "Diya", "Myra", "Sara", "Iraa", "Ahana", "Anvi",
	"Prisha", "Riya", "Aarohi", "Anaya", "Akshara", "Shanaya", "Kyra", "Samara", "Tara", "Kiara",
}

var LastNames = []string{
	"Sharma", "Verma", "Patel", "Gupta", "Singh", "Kumar", "Jain", "Shah", "Mehta", "Agarwal",
	"Reddy", "Nair", "Menon", "Iyer", "Rao", "Malhotra", "Chopra", "Joshi", "Bose", "Chatterjee",
	"Banerjee", "Mukherjee", "Das", "Sen", "Dutta", "Desai", "Patil", "Kaur", "Kapoor", "Khanna",
	"Saxena", "Bhatia", "Chauhan", "Chaudhary", "Mehra", "Sinha", "Trivedi", "Pandey", "Mishra", "Tiwari",
}

// Professions maps business type to plausible contact professions.
// Educational doubles as the fallback list for unrecognized types.
var Professions = map[string][]string{
	"Educational": {
		"Principal", "Vice Principal", "School Director", "Administrator", "Department Head",
		"Academic Coordinator", "School Owner", "Trustee", "Education Consultant", "School Relationship Manager",
	},
	"Industrial": {
		"CEO", "Managing Director", "Plant Manager", "Operations Head", "Production Manager",
		"Quality Control Manager", "Procurement Manager", "Industrial Engineer", "Maintenance Manager", "R&D Head",
	},
	"Technology": {
		"CTO", "IT Director", "Software Architect", "Development Manager", "Project Manager",
		"IT Manager", "System Administrator", "Network Manager", "Security Officer", "Technical Lead",
	},
	"Healthcare": {
		"Medical Director", "Chief Medical Officer", "Hospital Administrator", "Clinic Manager", "Head Doctor",
		"Chief of Staff", "Pharmacy Manager", "Lab Director", "Radiology Manager", "Healthcare Consultant",
	},
	"Retail": {
		"Store Manager", "Retail Director", "Merchandising Manager", "Operations Manager", "Sales Manager",
		"Category Manager", "Inventory Manager", "Retail Consultant", "Branch Manager", "Department Manager",
	},
	"Hospitality": {
		"Hotel Manager", "Restaurant Owner", "F&B Manager", "Executive Chef", "Hospitality Director",
		"Events Manager", "Travel Agency Owner", "Tourism Consultant", "Guest Relations Manager", "Operations Director",
	},
	"Financial": {
		"Branch Manager", "Financial Advisor", "Insurance Agent", "Investment Consultant", "Accounting Manager",
		"Tax Consultant", "Wealth Manager", "Financial Planner", "Banking Officer", "Credit Manager",
	},
}

// ProductInterests maps business type to the product codes its leads tend to
// ask about. Educational doubles as the fallback list.
var ProductInterests = map[string][]string{
	"Educational": {"ELAP", "MDL", "PBL", "ICT", "AI Workshop", "AI tutor", "Simulation", "E2MP", "LMS", "AI software"},
	"Industrial":  {"AI software", "E2MP", "Entrepreneurship_Workshop", "Tech Franchise"},
	"Technology":  {"AI software", "E2MP software", "LMS", "Tech Franchise", "Entrepreneurship_Workshop"},
	"Healthcare":  {"AI software", "E2MP", "Entrepreneurship_Workshop", "Simulation"},
	"Retail":      {"AI software", "E2MP", "Entrepreneurship_Workshop", "Digital Marketing Masterclass"},
	"Hospitality": {"AI software", "E2MP", "Entrepreneurship_Workshop", "Digital Marketing Masterclass"},
	"Financial":   {"AI software", "E2MP", "Entrepreneurship_Workshop", "Digital Marketing Masterclass"},
}

// LeadSources are the acquisition channel tags.
var LeadSources = []string{
	"Website", "Referral", "Cold Call", "Event", "Email Campaign", "Social Media",
	"Google Ads", "LinkedIn", "Trade Show", "Partner Referral", "Direct Mail", "Webinar",
}

// EmailDomains are the free-mail domains used when a generated contact does
// not get a company-domain address.
var EmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "company.com"}

// BudgetRanges holds the inclusive (min,max) budget range per business type.
type BudgetRange struct {
	Min, Max int
}

var BudgetRanges = map[string]BudgetRange{
	"Educational": {50000, 500000},
	"Industrial":  {100000, 1000000},
	"Technology":  {75000, 750000},
	"Healthcare":  {100000, 1000000},
	"Retail":      {50000, 500000},
	"Hospitality": {75000, 750000},
	"Financial":   {100000, 1000000},
}

// DefaultBudgetRange is used when the business type is unrecognized.
var DefaultBudgetRange = BudgetRange{50000, 500000}

// StateForCity returns the state containing the given city, or "" if the
// city is not in the table. Linear scan; the table is small and static.
func StateForCity(city string) string {
	for state, cities := range StatesCities {
		for _, c := range cities {
			if c == city {
				return state
			}
		}
	}
	return ""
}

// CitiesIn returns the cities for a state, or nil for unknown states.
func CitiesIn(state string) []string {
	return StatesCities[state]
}

// States returns all state names in stable sorted order.
func States() []string {
	return sortedKeys(StatesCities)
}

// BusinessTypeNames returns all business type names in stable sorted order.
func BusinessTypeNames() []string {
	return sortedKeys(BusinessTypes)
}

// Subcategories returns the subcategories for a business type, or nil.
func Subcategories(businessType string) []string {
	return BusinessTypes[businessType]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
