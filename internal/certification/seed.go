package certification

func topic(name string, weight float64, subtopics ...string) ExamTopic {
	return ExamTopic{Name: name, Weight: weight, Subtopics: subtopics}
}

// seedCertifications returns the built-in catalog. Topic weights follow the
// published exam guides, rounded to whole percentages.
func seedCertifications() []Certification {
	return []Certification{
		// ── AWS ─────────────────────────────────────────────
		{
			ID: "aws-ccp", Name: "AWS Certified Cloud Practitioner",
			Provider: ProviderAWS, Level: LevelFoundational, Difficulty: 1,
			ExamTopics: []ExamTopic{
				topic("Cloud Concepts", 24, "Benefits of the AWS Cloud", "Well-Architected Framework", "Migration strategies"),
				topic("Security and Compliance", 30, "Shared responsibility model", "IAM basics", "Compliance programs"),
				topic("Cloud Technology and Services", 34, "Compute", "Storage", "Networking", "Databases"),
				topic("Billing, Pricing, and Support", 12, "Pricing models", "Cost management tools", "Support plans"),
			},
			Roles:       []Role{RoleCloudArchitect, RoleDevOpsEngineer, RoleDeveloper, RoleDataEngineer, RoleSecurityEngineer, RoleMLEngineer},
			ExamCostUSD: 100, ExamMinutes: 90, ValidityYears: 3,
		},
		{
			ID: "aws-saa", Name: "AWS Certified Solutions Architect - Associate",
			Provider: ProviderAWS, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Design Secure Architectures", 30, "IAM policies", "VPC security", "Data protection"),
				topic("Design Resilient Architectures", 26, "Decoupling", "Multi-AZ and multi-Region", "Disaster recovery"),
				topic("Design High-Performing Architectures", 24, "Storage selection", "Compute scaling", "Caching"),
				topic("Design Cost-Optimized Architectures", 20, "Pricing options", "Storage tiering", "Network costs"),
			},
			Prerequisites: []string{"aws-ccp"},
			Roles:         []Role{RoleCloudArchitect, RoleSecurityEngineer},
			ExamCostUSD:   150, ExamMinutes: 130, ValidityYears: 3,
		},
		{
			ID: "aws-dva", Name: "AWS Certified Developer - Associate",
			Provider: ProviderAWS, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Development with AWS Services", 32, "Lambda", "DynamoDB", "API Gateway", "SDKs"),
				topic("Security", 26, "Authentication", "Encryption", "Secrets management"),
				topic("Deployment", 24, "CI/CD pipelines", "SAM and CloudFormation", "Deployment strategies"),
				topic("Troubleshooting and Optimization", 18, "CloudWatch", "X-Ray", "Performance tuning"),
			},
			Prerequisites: []string{"aws-ccp"},
			Roles:         []Role{RoleDeveloper, RoleDevOpsEngineer},
			ExamCostUSD:   150, ExamMinutes: 130, ValidityYears: 3,
		},
		{
			ID: "aws-soa", Name: "AWS Certified SysOps Administrator - Associate",
			Provider: ProviderAWS, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Monitoring, Logging, and Remediation", 20),
				topic("Reliability and Business Continuity", 16),
				topic("Deployment, Provisioning, and Automation", 18),
				topic("Security and Compliance", 16),
				topic("Networking and Content Delivery", 18),
				topic("Cost and Performance Optimization", 12),
			},
			Prerequisites: []string{"aws-ccp"},
			Roles:         []Role{RoleDevOpsEngineer},
			ExamCostUSD:   150, ExamMinutes: 130, ValidityYears: 3,
		},
		{
			ID: "aws-dea", Name: "AWS Certified Data Engineer - Associate",
			Provider: ProviderAWS, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Data Ingestion and Transformation", 34, "Streaming ingestion", "Glue ETL", "Orchestration"),
				topic("Data Store Management", 26, "Redshift", "S3 data lakes", "Schema design"),
				topic("Data Operations and Support", 22, "Monitoring pipelines", "Data quality"),
				topic("Data Security and Governance", 18, "Lake Formation", "Encryption", "Auditing"),
			},
			Prerequisites: []string{"aws-ccp"},
			Roles:         []Role{RoleDataEngineer},
			ExamCostUSD:   150, ExamMinutes: 130, ValidityYears: 3,
		},
		{
			ID: "aws-mla", Name: "AWS Certified Machine Learning Engineer - Associate",
			Provider: ProviderAWS, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Data Preparation for Machine Learning", 28),
				topic("ML Model Development", 26),
				topic("Deployment and Orchestration of ML Workflows", 22),
				topic("ML Solution Monitoring, Maintenance, and Security", 24),
			},
			Prerequisites: []string{"aws-ccp"},
			Roles:         []Role{RoleMLEngineer},
			ExamCostUSD:   150, ExamMinutes: 130, ValidityYears: 3,
		},
		{
			ID: "aws-sap", Name: "AWS Certified Solutions Architect - Professional",
			Provider: ProviderAWS, Level: LevelProfessional, Difficulty: 5,
			ExamTopics: []ExamTopic{
				topic("Design Solutions for Organizational Complexity", 26, "Multi-account strategy", "Hybrid networking"),
				topic("Design for New Solutions", 29, "Business continuity", "Performance objectives"),
				topic("Continuous Improvement for Existing Solutions", 25, "Operational excellence", "Reliability improvements"),
				topic("Accelerate Workload Migration and Modernization", 20, "Migration tooling", "Modernization patterns"),
			},
			Prerequisites: []string{"aws-saa"},
			Roles:         []Role{RoleCloudArchitect},
			ExamCostUSD:   300, ExamMinutes: 180, ValidityYears: 3,
		},
		{
			ID: "aws-dop", Name: "AWS Certified DevOps Engineer - Professional",
			Provider: ProviderAWS, Level: LevelProfessional, Difficulty: 5,
			ExamTopics: []ExamTopic{
				topic("SDLC Automation", 22),
				topic("Configuration Management and IaC", 17),
				topic("Resilient Cloud Solutions", 15),
				topic("Monitoring and Logging", 15),
				topic("Incident and Event Response", 14),
				topic("Security and Compliance", 17),
			},
			Prerequisites: []string{"aws-dva", "aws-soa"},
			Roles:         []Role{RoleDevOpsEngineer},
			ExamCostUSD:   300, ExamMinutes: 180, ValidityYears: 3,
		},
		{
			ID: "aws-scs", Name: "AWS Certified Security - Specialty",
			Provider: ProviderAWS, Level: LevelSpecialty, Difficulty: 4,
			ExamTopics: []ExamTopic{
				topic("Threat Detection and Incident Response", 14),
				topic("Security Logging and Monitoring", 18),
				topic("Infrastructure Security", 20),
				topic("Identity and Access Management", 16),
				topic("Data Protection", 18),
				topic("Management and Security Governance", 14),
			},
			Prerequisites: []string{"aws-saa"},
			Roles:         []Role{RoleSecurityEngineer},
			ExamCostUSD:   300, ExamMinutes: 170, ValidityYears: 3,
		},

		// ── Azure ───────────────────────────────────────────
		{
			ID: "az-900", Name: "Microsoft Azure Fundamentals",
			Provider: ProviderAzure, Level: LevelFoundational, Difficulty: 1,
			ExamTopics: []ExamTopic{
				topic("Cloud Concepts", 28, "Cloud models", "Service types"),
				topic("Azure Architecture and Services", 37, "Core architecture", "Compute and networking", "Storage", "Identity"),
				topic("Azure Management and Governance", 35, "Cost management", "Governance tools", "Monitoring"),
			},
			Roles:       []Role{RoleCloudArchitect, RoleDevOpsEngineer, RoleDeveloper, RoleDataEngineer, RoleSecurityEngineer, RoleMLEngineer},
			ExamCostUSD: 99, ExamMinutes: 45,
		},
		{
			ID: "az-104", Name: "Microsoft Azure Administrator",
			Provider: ProviderAzure, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Manage Azure Identities and Governance", 22),
				topic("Implement and Manage Storage", 18),
				topic("Deploy and Manage Azure Compute Resources", 22),
				topic("Implement and Manage Virtual Networking", 18),
				topic("Monitor and Maintain Azure Resources", 20),
			},
			Prerequisites: []string{"az-900"},
			Roles:         []Role{RoleCloudArchitect, RoleDevOpsEngineer, RoleSecurityEngineer},
			ExamCostUSD:   165, ExamMinutes: 100, ValidityYears: 1,
		},
		{
			ID: "az-204", Name: "Developing Solutions for Microsoft Azure",
			Provider: ProviderAzure, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Develop Azure Compute Solutions", 27),
				topic("Develop for Azure Storage", 17),
				topic("Implement Azure Security", 22),
				topic("Monitor and Troubleshoot Solutions", 7),
				topic("Connect to and Consume Azure Services", 27),
			},
			Prerequisites: []string{"az-900"},
			Roles:         []Role{RoleDeveloper, RoleDevOpsEngineer},
			ExamCostUSD:   165, ExamMinutes: 100, ValidityYears: 1,
		},
		{
			ID: "dp-203", Name: "Azure Data Engineer Associate",
			Provider: ProviderAzure, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Design and Implement Data Storage", 18),
				topic("Develop Data Processing", 43),
				topic("Secure, Monitor, and Optimize Data Storage and Processing", 39),
			},
			Prerequisites: []string{"az-900"},
			Roles:         []Role{RoleDataEngineer},
			ExamCostUSD:   165, ExamMinutes: 100, ValidityYears: 1,
		},
		{
			ID: "ai-102", Name: "Azure AI Engineer Associate",
			Provider: ProviderAzure, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Plan and Manage an Azure AI Solution", 20),
				topic("Implement Generative AI Solutions", 17),
				topic("Implement Computer Vision Solutions", 17),
				topic("Implement Natural Language Processing Solutions", 23),
				topic("Implement Knowledge Mining and Document Intelligence", 23),
			},
			Prerequisites: []string{"az-900"},
			Roles:         []Role{RoleMLEngineer},
			ExamCostUSD:   165, ExamMinutes: 100, ValidityYears: 1,
		},
		{
			ID: "az-305", Name: "Azure Solutions Architect Expert",
			Provider: ProviderAzure, Level: LevelProfessional, Difficulty: 5,
			ExamTopics: []ExamTopic{
				topic("Design Identity, Governance, and Monitoring Solutions", 28),
				topic("Design Data Storage Solutions", 22),
				topic("Design Business Continuity Solutions", 13),
				topic("Design Infrastructure Solutions", 37),
			},
			Prerequisites: []string{"az-104"},
			Roles:         []Role{RoleCloudArchitect},
			ExamCostUSD:   165, ExamMinutes: 120, ValidityYears: 1,
		},
		{
			ID: "az-400", Name: "Azure DevOps Engineer Expert",
			Provider: ProviderAzure, Level: LevelProfessional, Difficulty: 4,
			ExamTopics: []ExamTopic{
				topic("Configure Processes and Communications", 13),
				topic("Design and Implement a Source Control Strategy", 13),
				topic("Design and Implement Build and Release Pipelines", 45),
				topic("Develop a Security and Compliance Plan", 13),
				topic("Implement an Instrumentation Strategy", 16),
			},
			Prerequisites: []string{"az-104"},
			Roles:         []Role{RoleDevOpsEngineer},
			ExamCostUSD:   165, ExamMinutes: 100, ValidityYears: 1,
		},
		{
			ID: "az-500", Name: "Azure Security Engineer Associate",
			Provider: ProviderAzure, Level: LevelSpecialty, Difficulty: 4,
			ExamTopics: []ExamTopic{
				topic("Manage Identity and Access", 23),
				topic("Secure Networking", 22),
				topic("Secure Compute, Storage, and Databases", 22),
				topic("Manage Security Operations", 33),
			},
			Prerequisites: []string{"az-104"},
			Roles:         []Role{RoleSecurityEngineer},
			ExamCostUSD:   165, ExamMinutes: 100, ValidityYears: 1,
		},

		// ── Google Cloud ────────────────────────────────────
		{
			ID: "gcp-cdl", Name: "Google Cloud Digital Leader",
			Provider: ProviderGCP, Level: LevelFoundational, Difficulty: 1,
			ExamTopics: []ExamTopic{
				topic("Digital Transformation with Google Cloud", 17),
				topic("Exploring Data Transformation with Google Cloud", 16),
				topic("Innovating with Google Cloud Artificial Intelligence", 16),
				topic("Modernize Infrastructure and Applications", 17),
				topic("Trust and Security with Google Cloud", 17),
				topic("Scaling with Google Cloud Operations", 17),
			},
			Roles:       []Role{RoleCloudArchitect, RoleDevOpsEngineer, RoleDeveloper, RoleDataEngineer, RoleSecurityEngineer, RoleMLEngineer},
			ExamCostUSD: 99, ExamMinutes: 90, ValidityYears: 3,
		},
		{
			ID: "gcp-ace", Name: "Google Cloud Associate Cloud Engineer",
			Provider: ProviderGCP, Level: LevelAssociate, Difficulty: 3,
			ExamTopics: []ExamTopic{
				topic("Setting Up a Cloud Solution Environment", 20),
				topic("Planning and Implementing a Cloud Solution", 30),
				topic("Ensuring Successful Operation of a Cloud Solution", 27),
				topic("Configuring Access and Security", 23),
			},
			Prerequisites: []string{"gcp-cdl"},
			Roles:         []Role{RoleCloudArchitect, RoleDevOpsEngineer, RoleDeveloper},
			ExamCostUSD:   125, ExamMinutes: 120, ValidityYears: 3,
		},
		{
			ID: "gcp-pca", Name: "Google Cloud Professional Cloud Architect",
			Provider: ProviderGCP, Level: LevelProfessional, Difficulty: 5,
			ExamTopics: []ExamTopic{
				topic("Designing and Planning a Cloud Solution Architecture", 24),
				topic("Managing and Provisioning Infrastructure", 15),
				topic("Designing for Security and Compliance", 18),
				topic("Analyzing and Optimizing Processes", 18),
				topic("Managing Implementation", 11),
				topic("Ensuring Solution and Operations Excellence", 14),
			},
			Prerequisites: []string{"gcp-ace"},
			Roles:         []Role{RoleCloudArchitect},
			ExamCostUSD:   200, ExamMinutes: 120, ValidityYears: 2,
		},
		{
			ID: "gcp-pcd", Name: "Google Cloud Professional Cloud DevOps Engineer",
			Provider: ProviderGCP, Level: LevelProfessional, Difficulty: 4,
			ExamTopics: []ExamTopic{
				topic("Bootstrapping a Google Cloud Organization", 17),
				topic("Building and Implementing CI/CD Pipelines", 23),
				topic("Applying Site Reliability Engineering Practices", 23),
				topic("Implementing Observability Practices", 23),
				topic("Optimizing Performance and Cost", 14),
			},
			Prerequisites: []string{"gcp-ace"},
			Roles:         []Role{RoleDevOpsEngineer},
			ExamCostUSD:   200, ExamMinutes: 120, ValidityYears: 2,
		},
		{
			ID: "gcp-pde", Name: "Google Cloud Professional Data Engineer",
			Provider: ProviderGCP, Level: LevelProfessional, Difficulty: 4,
			ExamTopics: []ExamTopic{
				topic("Designing Data Processing Systems", 22),
				topic("Ingesting and Processing the Data", 25),
				topic("Storing the Data", 20),
				topic("Preparing and Using Data for Analysis", 15),
				topic("Maintaining and Automating Data Workloads", 18),
			},
			Prerequisites: []string{"gcp-ace"},
			Roles:         []Role{RoleDataEngineer},
			ExamCostUSD:   200, ExamMinutes: 120, ValidityYears: 2,
		},
		{
			ID: "gcp-pcse", Name: "Google Cloud Professional Cloud Security Engineer",
			Provider: ProviderGCP, Level: LevelProfessional, Difficulty: 4,
			ExamTopics: []ExamTopic{
				topic("Configuring Access", 27),
				topic("Securing Communications and Establishing Boundary Protection", 21),
				topic("Ensuring Data Protection", 20),
				topic("Managing Operations", 22),
				topic("Supporting Compliance Requirements", 10),
			},
			Prerequisites: []string{"gcp-ace"},
			Roles:         []Role{RoleSecurityEngineer},
			ExamCostUSD:   200, ExamMinutes: 120, ValidityYears: 2,
		},
		{
			ID: "gcp-pmle", Name: "Google Cloud Professional Machine Learning Engineer",
			Provider: ProviderGCP, Level: LevelProfessional, Difficulty: 5,
			ExamTopics: []ExamTopic{
				topic("Architecting Low-Code AI Solutions", 13),
				topic("Collaborating to Manage Data and Models", 14),
				topic("Scaling Prototypes into ML Models", 18),
				topic("Serving and Scaling Models", 20),
				topic("Automating and Orchestrating ML Pipelines", 22),
				topic("Monitoring AI Solutions", 13),
			},
			Prerequisites: []string{"gcp-ace"},
			Roles:         []Role{RoleMLEngineer},
			ExamCostUSD:   200, ExamMinutes: 120, ValidityYears: 2,
		},

		// ── Vendor neutral ──────────────────────────────────
		{
			ID: "terraform-associate", Name: "HashiCorp Certified: Terraform Associate",
			Provider: ProviderVendorNeutral, Level: LevelAssociate, Difficulty: 2,
			ExamTopics: []ExamTopic{
				topic("Infrastructure as Code Concepts", 12),
				topic("Terraform Fundamentals and Workflow", 26),
				topic("Terraform Configuration and Modules", 30),
				topic("State Management", 20),
				topic("HCP Terraform", 12),
			},
			Roles:       []Role{RoleDevOpsEngineer, RoleCloudArchitect},
			ExamCostUSD: 70, ExamMinutes: 60, ValidityYears: 2,
		},
		{
			ID: "cka", Name: "Certified Kubernetes Administrator",
			Provider: ProviderVendorNeutral, Level: LevelProfessional, Difficulty: 4,
			ExamTopics: []ExamTopic{
				topic("Storage", 10),
				topic("Troubleshooting", 30),
				topic("Workloads and Scheduling", 15),
				topic("Cluster Architecture, Installation, and Configuration", 25),
				topic("Services and Networking", 20),
			},
			Roles:       []Role{RoleDevOpsEngineer},
			ExamCostUSD: 445, ExamMinutes: 120, ValidityYears: 2,
		},
	}
}
