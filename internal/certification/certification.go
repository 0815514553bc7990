package certification

// Provider identifies the vendor that issues a certification.
type Provider string

const (
	ProviderAWS           Provider = "aws"
	ProviderAzure         Provider = "azure"
	ProviderGCP           Provider = "gcp"
	ProviderVendorNeutral Provider = "vendor-neutral"
)

// AllProviders returns all providers in display order.
func AllProviders() []Provider {
	return []Provider{
		ProviderAWS,
		ProviderAzure,
		ProviderGCP,
		ProviderVendorNeutral,
	}
}

// ProviderDisplayName returns a human-readable name for a provider.
func ProviderDisplayName(p Provider) string {
	switch p {
	case ProviderAWS:
		return "Amazon Web Services"
	case ProviderAzure:
		return "Microsoft Azure"
	case ProviderGCP:
		return "Google Cloud"
	case ProviderVendorNeutral:
		return "Vendor Neutral"
	default:
		return string(p)
	}
}

// Level is the tier of a certification within its provider's track.
type Level string

const (
	LevelFoundational Level = "foundational"
	LevelAssociate    Level = "associate"
	LevelProfessional Level = "professional"
	LevelSpecialty    Level = "specialty"
)

// Rank orders levels from entry-level to expert. Unknown levels rank -1.
func (l Level) Rank() int {
	switch l {
	case LevelFoundational:
		return 0
	case LevelAssociate:
		return 1
	case LevelProfessional:
		return 2
	case LevelSpecialty:
		return 3
	default:
		return -1
	}
}

// Label returns the display label for a level.
func (l Level) Label() string {
	switch l {
	case LevelFoundational:
		return "Foundational"
	case LevelAssociate:
		return "Associate"
	case LevelProfessional:
		return "Professional"
	case LevelSpecialty:
		return "Specialty"
	default:
		return string(l)
	}
}

// Role is a career goal a certification supports.
type Role string

const (
	RoleCloudArchitect   Role = "cloud-architect"
	RoleDevOpsEngineer   Role = "devops-engineer"
	RoleDeveloper        Role = "developer"
	RoleDataEngineer     Role = "data-engineer"
	RoleSecurityEngineer Role = "security-engineer"
	RoleMLEngineer       Role = "ml-engineer"
)

// AllRoles returns all roles in display order.
func AllRoles() []Role {
	return []Role{
		RoleCloudArchitect,
		RoleDevOpsEngineer,
		RoleDeveloper,
		RoleDataEngineer,
		RoleSecurityEngineer,
		RoleMLEngineer,
	}
}

// IsKnownRole reports whether r is one of AllRoles.
func IsKnownRole(r Role) bool {
	for _, known := range AllRoles() {
		if r == known {
			return true
		}
	}
	return false
}

// RoleDisplayName returns a human-readable name for a role.
func RoleDisplayName(r Role) string {
	switch r {
	case RoleCloudArchitect:
		return "Cloud Architect"
	case RoleDevOpsEngineer:
		return "DevOps Engineer"
	case RoleDeveloper:
		return "Cloud Developer"
	case RoleDataEngineer:
		return "Data Engineer"
	case RoleSecurityEngineer:
		return "Security Engineer"
	case RoleMLEngineer:
		return "Machine Learning Engineer"
	default:
		return string(r)
	}
}

// ExamTopic is one weighted domain of a certification exam guide.
type ExamTopic struct {
	Name      string   `json:"name" yaml:"name"`
	Weight    float64  `json:"weight" yaml:"weight"` // percent of the exam, 0-100
	Subtopics []string `json:"subtopics,omitempty" yaml:"subtopics,omitempty"`
}

// Certification is a named credential with weighted exam topics.
type Certification struct {
	ID            string      `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Provider      Provider    `json:"provider" yaml:"provider"`
	Level         Level       `json:"level" yaml:"level"`
	Difficulty    int         `json:"difficulty" yaml:"difficulty"` // 1-5, 3 is baseline
	ExamTopics    []ExamTopic `json:"examTopics" yaml:"examTopics"`
	Prerequisites []string    `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	Roles         []Role      `json:"roles,omitempty" yaml:"roles,omitempty"`
	ExamCostUSD   int         `json:"examCostUsd,omitempty" yaml:"examCostUsd,omitempty"`
	ExamMinutes   int         `json:"examMinutes,omitempty" yaml:"examMinutes,omitempty"`
	ValidityYears int         `json:"validityYears,omitempty" yaml:"validityYears,omitempty"`
}

// HasRole reports whether the certification supports the given role.
func (c Certification) HasRole(r Role) bool {
	for _, role := range c.Roles {
		if role == r {
			return true
		}
	}
	return false
}

// TotalWeight returns the sum of all exam topic weights.
func (c Certification) TotalWeight() float64 {
	var total float64
	for _, t := range c.ExamTopics {
		total += t.Weight
	}
	return total
}
