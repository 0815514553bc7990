package resources

import "github.com/abhisek/certplan/internal/certification"

func seedResources() []Resource {
	aws, azure, gcp, neutral := certification.ProviderAWS, certification.ProviderAzure,
		certification.ProviderGCP, certification.ProviderVendorNeutral

	return []Resource{
		// AWS
		{ID: "aws-skill-builder-ccp", Title: "AWS Cloud Practitioner Essentials", Kind: KindCourse, Provider: aws,
			CertificationIDs: []string{"aws-ccp"}, Rating: 4.5, Hours: 6, Level: certification.LevelFoundational},
		{ID: "aws-docs-well-architected", Title: "AWS Well-Architected Framework", Kind: KindDocs, Provider: aws,
			CertificationIDs: []string{"aws-saa", "aws-sap"}, Rating: 4.4, Hours: 8},
		{ID: "aws-saa-course", Title: "Ultimate AWS Solutions Architect Associate", Kind: KindCourse, Provider: aws,
			CertificationIDs: []string{"aws-saa"}, CostUSD: 20, Rating: 4.7, Hours: 27, Level: certification.LevelAssociate},
		{ID: "aws-saa-practice", Title: "AWS SAA Practice Exams", Kind: KindPracticeExam, Provider: aws,
			CertificationIDs: []string{"aws-saa"}, CostUSD: 15, Rating: 4.6, Hours: 12, Level: certification.LevelAssociate},
		{ID: "aws-dva-course", Title: "AWS Developer Associate Deep Dive", Kind: KindCourse, Provider: aws,
			CertificationIDs: []string{"aws-dva"}, CostUSD: 20, Rating: 4.6, Hours: 32, Level: certification.LevelAssociate},
		{ID: "aws-sap-course", Title: "AWS Solutions Architect Professional Bootcamp", Kind: KindCourse, Provider: aws,
			CertificationIDs: []string{"aws-sap"}, CostUSD: 25, Rating: 4.7, Hours: 45, Level: certification.LevelProfessional},
		{ID: "aws-workshops", Title: "AWS Workshops", Kind: KindLabs, Provider: aws,
			CertificationIDs: []string{"aws-saa", "aws-dva", "aws-soa", "aws-dop"}, Rating: 4.2, Hours: 20},
		{ID: "aws-security-book", Title: "AWS Security Specialty Study Guide", Kind: KindBook, Provider: aws,
			CertificationIDs: []string{"aws-scs"}, CostUSD: 45, Rating: 4.1, Hours: 30, Level: certification.LevelSpecialty},

		// Azure
		{ID: "ms-learn-az-900", Title: "Microsoft Learn: Azure Fundamentals", Kind: KindCourse, Provider: azure,
			CertificationIDs: []string{"az-900"}, Rating: 4.5, Hours: 10, Level: certification.LevelFoundational},
		{ID: "ms-learn-az-104", Title: "Microsoft Learn: Azure Administrator", Kind: KindCourse, Provider: azure,
			CertificationIDs: []string{"az-104"}, Rating: 4.4, Hours: 35, Level: certification.LevelAssociate},
		{ID: "az-104-practice", Title: "AZ-104 Practice Tests", Kind: KindPracticeExam, Provider: azure,
			CertificationIDs: []string{"az-104"}, CostUSD: 15, Rating: 4.3, Hours: 10, Level: certification.LevelAssociate},
		{ID: "az-305-video", Title: "Designing Azure Infrastructure Solutions", Kind: KindVideo, Provider: azure,
			CertificationIDs: []string{"az-305"}, CostUSD: 30, Rating: 4.5, Hours: 18, Level: certification.LevelProfessional},
		{ID: "azure-architecture-center", Title: "Azure Architecture Center", Kind: KindDocs, Provider: azure,
			CertificationIDs: []string{"az-305", "az-104"}, Rating: 4.3, Hours: 10},

		// Google Cloud
		{ID: "gcp-skills-cdl", Title: "Google Cloud Digital Leader Training", Kind: KindCourse, Provider: gcp,
			CertificationIDs: []string{"gcp-cdl"}, Rating: 4.3, Hours: 8, Level: certification.LevelFoundational},
		{ID: "gcp-ace-labs", Title: "Associate Cloud Engineer Skill Badges", Kind: KindLabs, Provider: gcp,
			CertificationIDs: []string{"gcp-ace"}, Rating: 4.4, Hours: 25, Level: certification.LevelAssociate},
		{ID: "gcp-pca-case-studies", Title: "Professional Cloud Architect Case Studies", Kind: KindDocs, Provider: gcp,
			CertificationIDs: []string{"gcp-pca"}, Rating: 4.2, Hours: 6, Level: certification.LevelProfessional},
		{ID: "gcp-pca-practice", Title: "Google Cloud PCA Practice Exams", Kind: KindPracticeExam, Provider: gcp,
			CertificationIDs: []string{"gcp-pca"}, CostUSD: 20, Rating: 4.4, Hours: 8, Level: certification.LevelProfessional},

		// Vendor neutral
		{ID: "terraform-tutorials", Title: "HashiCorp Terraform Tutorials", Kind: KindLabs, Provider: neutral,
			CertificationIDs: []string{"terraform-associate"}, Rating: 4.6, Hours: 15, Level: certification.LevelAssociate},
		{ID: "cka-killer-sh", Title: "CKA Exam Simulator", Kind: KindPracticeExam, Provider: neutral,
			CertificationIDs: []string{"cka"}, CostUSD: 35, Rating: 4.8, Hours: 8, Level: certification.LevelProfessional},
		{ID: "kubernetes-the-hard-way", Title: "Kubernetes The Hard Way", Kind: KindLabs, Provider: neutral,
			CertificationIDs: []string{"cka"}, Rating: 4.5, Hours: 12},
		{ID: "cloud-networking-book", Title: "Cloud Networking Fundamentals", Kind: KindBook, Provider: neutral,
			CostUSD: 40, Rating: 3.9, Hours: 20},
	}
}
