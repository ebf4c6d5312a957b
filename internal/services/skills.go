package services

import (
	"strings"

	"skillpath/internal/models"
)

// skillAliases maps compacted skill names (lower-case, spaces and hyphens
// stripped) onto catalog keys. "Azure", "cloud-azure" and "Cloud - Azure"
// all land on the same entry.
var skillAliases = map[string]string{
	"cloudazure": "cloud-azure",
	"azure":      "cloud-azure",
	"cloudaws":   "cloud-aws",
	"aws":        "cloud-aws",
}

// Normalize canonicalizes a free-form skill name into a catalog key. The
// alias lookup happens on the compacted form; when it misses, the fallback
// slugifies the original string instead, replacing " - " before single
// spaces. The two stages intentionally operate on different strings; catalog
// keys were built under the same rule.
func Normalize(skill string) string {
	compact := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(skill), " ", ""), "-", "")
	if alias, ok := skillAliases[compact]; ok {
		return alias
	}
	slug := strings.ToLower(skill)
	slug = strings.ReplaceAll(slug, " - ", "-")
	return strings.ReplaceAll(slug, " ", "-")
}

type levelPair struct {
	current string
	target  string
}

// catalog is the static skill/level course table, used both as the non-AI
// recommendation source and as the last resort when generation fails.
var catalog = map[string]map[levelPair][]models.CourseRecommendation{
	"ai": {
		{"beginner", "basic"}: {
			{Name: "Introduction to Artificial Intelligence", Source: "Coursera", Duration: "4 weeks", URL: "https://www.coursera.org/learn/introduction-to-ai"},
			{Name: "AI For Everyone", Source: "Coursera", Duration: "3 weeks", URL: "https://www.coursera.org/learn/ai-for-everyone"},
		},
		{"basic", "intermediate"}: {
			{Name: "Machine Learning Course", Source: "Coursera", Duration: "11 weeks", URL: "https://www.coursera.org/learn/machine-learning"},
			{Name: "Deep Learning Specialization", Source: "Coursera", Duration: "4 months", URL: "https://www.coursera.org/specializations/deep-learning"},
		},
	},
	"python": {
		{"beginner", "intermediate"}: {
			{Name: "Python for Everybody", Source: "Coursera", Duration: "8 months", URL: "https://www.coursera.org/specializations/python"},
			{Name: "Complete Python Bootcamp", Source: "Udemy", Duration: "22 hours", URL: "https://www.udemy.com/course/complete-python-bootcamp/"},
		},
	},
	"java": {
		{"beginner", "intermediate"}: {
			{Name: "Java Programming and Software Engineering", Source: "Coursera", Duration: "5 months", URL: "https://www.coursera.org/specializations/java-programming"},
		},
	},
	"data": {
		{"beginner", "intermediate"}: {
			{Name: "Data Science Specialization", Source: "Coursera", Duration: "11 months", URL: "https://www.coursera.org/specializations/jhu-data-science"},
		},
	},
	"cloud-azure": {
		{"beginner", "basic"}: {
			{Name: "Azure Fundamentals AZ-900", Source: "Microsoft Learn", Duration: "3 weeks", URL: "https://docs.microsoft.com/en-us/learn/paths/azure-fundamentals/"},
			{Name: "Azure Fundamentals", Source: "Pluralsight", Duration: "6 hours", URL: "https://www.pluralsight.com/paths/azure-fundamentals"},
		},
		{"basic", "intermediate"}: {
			{Name: "Azure Administrator AZ-104", Source: "Microsoft Learn", Duration: "8 weeks", URL: "https://docs.microsoft.com/en-us/learn/paths/az-104-administrator-prerequisites/"},
			{Name: "Azure Solutions Architect AZ-305", Source: "Microsoft Learn", Duration: "10 weeks", URL: "https://docs.microsoft.com/en-us/learn/paths/microsoft-azure-architect-design-prerequisites/"},
		},
	},
	"cloud-aws": {
		{"beginner", "basic"}: {
			{Name: "AWS Cloud Practitioner", Source: "AWS Training", Duration: "4 weeks", URL: "https://aws.amazon.com/training/learn-about/cloud-practitioner/"},
			{Name: "AWS Fundamentals", Source: "Coursera", Duration: "4 months", URL: "https://www.coursera.org/specializations/aws-fundamentals"},
		},
		{"basic", "intermediate"}: {
			{Name: "AWS Solutions Architect Associate", Source: "AWS Training", Duration: "12 weeks", URL: "https://aws.amazon.com/training/learn-about/architect/"},
			{Name: "AWS Developer Associate", Source: "A Cloud Guru", Duration: "8 weeks", URL: "https://acloudguru.com/course/aws-certified-developer-associate"},
		},
	},
	".net": {
		{"beginner", "basic"}: {
			{Name: ".NET Core Fundamentals", Source: "Microsoft Learn", Duration: "4 weeks", URL: "https://docs.microsoft.com/en-us/learn/paths/build-dotnet-applications-csharp/"},
			{Name: "C# Fundamentals", Source: "Pluralsight", Duration: "5 hours", URL: "https://www.pluralsight.com/courses/csharp-fundamentals-dev"},
		},
		{"basic", "intermediate"}: {
			{Name: "ASP.NET Core Web API", Source: "Microsoft Learn", Duration: "6 weeks", URL: "https://docs.microsoft.com/en-us/learn/paths/create-web-api-with-aspnet-core/"},
			{Name: "Entity Framework Core", Source: "Pluralsight", Duration: "4 hours", URL: "https://www.pluralsight.com/courses/entity-framework-core-getting-started"},
		},
	},
}

// CatalogLookup resolves the courses for a normalized skill and an exact
// (current, target) level pair. Unknown skills and unknown level pairs both
// return the single generic entry; there is no fuzzy matching.
func CatalogLookup(normalizedSkill, currentLevel, targetLevel string) []models.CourseRecommendation {
	if levels, ok := catalog[normalizedSkill]; ok {
		if courses, ok := levels[levelPair{currentLevel, targetLevel}]; ok {
			return courses
		}
	}
	return []models.CourseRecommendation{
		{Name: "General Programming Course", Source: "Coursera", Duration: "4 weeks", URL: "https://www.coursera.org/courses?query=programming"},
	}
}
