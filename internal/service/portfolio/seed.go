package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Initialize writes the built-in default portfolio. It is used as a fallback
// seeding mechanism when no portfolio exists yet; calling it again replaces
// the stored document wholesale with the default content.
func Initialize(ctx context.Context, svc Service) error {
	return svc.Upsert(ctx, DefaultPortfolio())
}

// DefaultPortfolio builds the complete hard-coded portfolio content. A fresh
// id and lastUpdated timestamp are generated on every call.
func DefaultPortfolio() *Portfolio {
	return &Portfolio{
		ID: uuid.NewString(),
		Personal: PersonalInfo{
			Name:            "Sudhanshu Shekhar Jha",
			Title:           "Senior Technical Product & Program Leader | Gen AI Powered",
			Tagline:         "Strategic Vision • Cross-Functional Orchestration • Outcome-Driven Leadership",
			Location:        "Greater Noida West, India",
			Email:           "sudhanshurg@gmail.com",
			Phone:           "+91-7303436488, +91-9650261122",
			LinkedIn:        "https://www.linkedin.com/in/sudhanshu-s-jha/",
			ProfileImage:    "https://customer-assets.emergentagent.com/job_portfolio-pro-96/artifacts/9k9r7grb_WhatsApp%20Image%202025-09-10%20at%2019.48.04.jpeg",
			YearsExperience: "19+",
			Domain:          "IT & Tech Experience • Healthcare • SaaS • Enterprise",
		},
		About: AboutInfo{
			Summary: "Accomplished Gen AI Powered Senior Technical Product & Program Leader with 19+ years in IT and 6+ years driving product management, agile delivery, and program governance across healthcare technology, SaaS, and enterprise ecosystems. Adept at blending strategic product vision with program execution discipline, ensuring delivery of high-value, compliant, and customer-centric solutions.",
			Highlights: []string{
				"Strategic product vision with program execution discipline",
				"Gen AI powered solutions and advanced analytics expertise",
				"End-to-end lifecycle management from strategy to sunset",
				"C-level stakeholder communication and executive leadership",
				"Healthcare technology and enterprise SaaS specialization",
				"Quantifiable business impact with data-driven decision making",
				"Cross-functional team leadership and matrix management",
				"Director/Head of Product/Program positioned for leadership roles",
			},
		},
		Skills: SkillsInfo{
			ProductManagement: []string{
				"Product Vision & Roadmapping",
				"Product Strategy & Execution",
				"Product Lifecycle Management",
				"Product Requirements (PRDs, User Stories)",
				"Feature Ownership & Prioritization",
				"Customer Discovery & VOC",
				"Data-Driven Feature Prioritization",
				"Continuous Improvement & Post-Release Metrics",
			},
			ProgramDelivery: []string{
				"Technical Program Management (TPM)",
				"Program & Project Governance",
				"Portfolio Oversight & Budget Management",
				"Agile Program Delivery",
				"Sprint Planning & Release Governance",
				"Risk & Dependency Tracking",
				"Benefits Realization & Value Stream",
				"End-to-End Program Delivery",
			},
			DataAndAI: []string{
				"Gen AI & Advanced SQL",
				"Power BI, SSRS, SSIS",
				"KPI Dashboards & Reporting",
				"Data-Driven Decision Making",
				"EHR/EMR Integrations (HL7, FHIR)",
				"Clinical Data Interchange",
				"Data Archival & Purging Programs",
				"Metrics Definition & Analytics",
			},
			Leadership: []string{
				"C-Level Stakeholder Communication",
				"Cross-Functional Collaboration",
				"Matrix Leadership & Global Teams",
				"Executive Storytelling & Communication",
				"Coaching, Mentoring & Team Enablement",
				"Change Enablement & Learning",
				"Conflict Resolution & Escalation",
				"Vendor & Partner Coordination",
			},
			Technical: []string{
				"CRM & TMS Platforms",
				"API Integrations & SaaS",
				"JIRA & Azure DevOps",
				"Confluence & GitHub",
				"Agile Ceremonies & Tools",
				"HIPAA Compliance",
				"Enterprise Integrations",
				"Flow Metrics & Sprint Health",
			},
		},
		Experience: []ExperienceItem{
			{
				ID:       1,
				Title:    "Senior Technical Product Manager / Senior Technical Project Manager",
				Company:  "MIDAS IT Services Pvt. Ltd.",
				Location: "New Delhi, India",
				Duration: "Mar 2023 – Present",
				Type:     "Full-time",
				Highlights: []string{
					"Defined product strategy and executed roadmaps for EHR analytics and provider engagement solutions",
					"Built and owned end-to-end product lifecycles from ideation to launch with data-driven insights",
					"Leveraged SQL, Power BI, and Google Analytics to optimize product adoption, retention, and ROI",
					"Led cross-functional agile teams to deliver AI/GenAI-driven solutions and complex product initiatives",
					"Partnered with engineering, data science, design, and clinical stakeholders ensuring regulatory compliance (HIPAA)",
					"Built and monitored product KPIs resulting in 25% improvement in feature adoption",
				},
			},
			{
				ID:       2,
				Title:    "Technical Project Manager",
				Company:  "MIDAS IT Services Pvt. Ltd.",
				Location: "New Delhi, India",
				Duration: "Mar 2020 – Feb 2023",
				Type:     "Full-time",
				Highlights: []string{
					"Owned multiple product areas within healthcare SaaS platforms, driving agile product delivery",
					"Defined clear product requirements and user stories, balancing user needs and business objectives",
					"Improved product-market fit resulting in measurable increase in customer satisfaction and retention",
					"Facilitated backlog grooming, sprint reviews, and agile ceremonies for team alignment",
					"Launched integrated APIs and real-time alerts, reducing manual tasks by 25%",
					"Built governance dashboards (JIRA + Power BI) increasing leadership visibility and decision speed",
				},
			},
			{
				ID:       3,
				Title:    "Project Lead",
				Company:  "MIDAS IT Services Pvt. Ltd.",
				Location: "New Delhi, India",
				Duration: "Jun 2016 – Feb 2020",
				Type:     "Full-time",
				Highlights: []string{
					"Managed full product lifecycle, delivering API-integrated solutions in healthcare and supply chain domains",
					"Improved cross-functional team productivity by 40% and launched high-impact SaaS features",
					"Led data-driven product enhancements using SQL and analytics for real-time user feedback prioritization",
				},
			},
			{
				ID:       4,
				Title:    "Tech Lead",
				Company:  "Incedo Inc. (formerly Indiabulls Technology Solutions)",
				Location: "Gurgaon, India",
				Duration: "Jul 2013 – Jun 2016",
				Type:     "Full-time",
				Highlights: []string{
					"Implemented TMS and CRM systems improving cross-functional productivity by 40%",
					"Executed supply chain automation for ADIDAS, boosting operational output by 20%",
				},
			},
			{
				ID:       5,
				Title:    "Senior Application Developer",
				Company:  "Serco Global Services Pvt. Ltd. (Infovision Solutions Pvt. Ltd.)",
				Location: "Gurgaon, India",
				Duration: "Sep 2007 – Jun 2013",
				Type:     "Full-time",
				Highlights: []string{
					"Developed SFTP-based EDI apps, enhancing real-time data exchange accuracy by over 95%",
					"Designed multi-tier database architecture, increasing data retrieval efficiency by 40%",
				},
			},
		},
		Projects: []ProjectItem{
			{
				ID:          1,
				Title:       "EHR Analytics & Provider Engagement Platform Evolution",
				Category:    "Product Strategy & Analytics",
				Description: "Led strategic product evolution for Electronic Health Record analytics platform, focusing on provider engagement solutions with comprehensive data visualization and dashboard capabilities.",
				Achievements: []string{
					"30% increase in provider engagement through strategic product initiatives",
					"20% improvement in client satisfaction by aligning features with business needs",
					"Enhanced data visualization and dashboarding solutions",
					"HIPAA, HL7, FHIR compliance alignment and regulatory framework adherence",
				},
				Technologies: []string{"Healthcare Analytics", "EHR Integration", "HL7/FHIR", "Power BI", "SQL", "Data Visualization"},
				Impact:       "Transformed healthcare provider experience through strategic product vision and improved engagement strategies.",
				Metrics: map[string]any{
					"engagement":   "30%",
					"satisfaction": "20%",
					"timeline":     "18 months",
				},
			},
			{
				ID:          2,
				Title:       "Gen AI-Powered Product Delivery & Analytics Framework",
				Category:    "Innovation & AI Implementation",
				Description: "Pioneered implementation of Generative AI-powered solutions across product delivery lifecycle, establishing advanced analytics modules and data-driven decision-making frameworks.",
				Achievements: []string{
					"40% reduction in time-to-insight through analytics modules launch",
					"Advanced SQL-powered dashboards for executive decision making",
					"Gen AI integration for product lifecycle management",
					"Sustainable reporting frameworks using JIRA, Power BI, and SQL",
				},
				Technologies: []string{"Generative AI", "Advanced SQL", "Power BI", "JIRA", "Google Analytics", "Data Science"},
				Impact:       "Revolutionary approach to product delivery optimization using cutting-edge AI technology and data science.",
				Metrics: map[string]any{
					"timeToInsight": "40%",
					"decisionSpeed": "40%",
					"framework":     "Comprehensive",
				},
			},
			{
				ID:          3,
				Title:       "Enterprise Data Management & Operational Efficiency",
				Category:    "Program Management & Operations",
				Description: "Spearheaded comprehensive data management initiatives including automated archival, purging programs, and operational efficiency improvements across healthcare SaaS platforms.",
				Achievements: []string{
					"30% reduction in storage costs through automated archival and purging",
					"20% improvement in data processing efficiency",
					"30% improvement in on-time delivery through program roadmaps",
					"Enhanced delivery predictability by 25% with structured governance",
				},
				Technologies: []string{"Data Management", "Automated Processes", "SQL", "Storage Optimization", "Program Governance"},
				Impact:       "Delivered significant operational efficiency and cost savings while maintaining data integrity and compliance.",
				Metrics: map[string]any{
					"costReduction":       "30%",
					"efficiency":          "20%",
					"deliveryImprovement": "30%",
				},
			},
			{
				ID:          4,
				Title:       "Healthcare SaaS Platform & Customer Adoption Growth",
				Category:    "Healthcare Product Development",
				Description: "Led comprehensive product initiatives for B2B healthcare SaaS platforms, focusing on user engagement mechanics, clinical workflow optimization, and customer adoption strategies.",
				Achievements: []string{
					"35% improvement in customer adoption through business-centric features",
					"30% improvement in user engagement through data-driven engagement mechanics",
					"25% improvement in feature adoption through user-centric design",
					"Enhanced clinical workflow automation reducing manual tasks",
				},
				Technologies: []string{"Healthcare SaaS", "B2B Platforms", "Clinical Workflows", "User Experience", "Engagement Analytics"},
				Impact:       "Transformed healthcare SaaS platform adoption and user engagement through strategic product initiatives.",
				Metrics: map[string]any{
					"adoption":        "35%",
					"engagement":      "30%",
					"featureAdoption": "25%",
				},
			},
			{
				ID:          5,
				Title:       "Cross-Functional Team Leadership & Delivery Excellence",
				Category:    "Leadership & Program Management",
				Description: "Established governance frameworks, built high-performing engineering teams, and implemented structured delivery processes to improve organizational efficiency and team performance.",
				Achievements: []string{
					"30% improvement in delivery efficiency through structured program planning",
					"40% improvement in cross-functional team productivity",
					"Built and mentored high-performing engineering teams",
					"Simplified complex delivery processes improving release governance",
				},
				Technologies: []string{"Agile Program Management", "Team Leadership", "JIRA", "Azure DevOps", "Governance Frameworks"},
				Impact:       "Created scalable delivery excellence through team leadership and structured governance frameworks.",
				Metrics: map[string]any{
					"deliveryEfficiency": "30%",
					"productivity":       "40%",
					"teamPerformance":    "High",
				},
			},
		},
		Certifications: []string{
			"ISB Certified Product Manager",
			"Project Management Professional (PMP) - Google Accredited",
			"Professional Scrum Product Owner (PSPO) - Scrum.org",
			"Professional Scrum Master (PSM) - Scrum.org",
			"Scaled Professional Scrum (SPS) - Scrum.org",
			"Google Certified AI Professional - Google AI Essentials",
		},
		Achievements: []Achievement{
			{
				Title:       "Philips Client Recognition",
				Description: "Awarded by client (Philips) for error-free data transfer within timelines",
			},
			{
				Title:       "Serco Pulse Award - Best Employee",
				Description: "Honored 'Serco Pulse Award – Best Employee (India) of the year' by Serco Global Services",
			},
			{
				Title:       "Tech PMx Junction Newsletter Author",
				Description: "Author of Tech PMx Junction newsletter dedicated to real-world lessons in product, project, and program management with strategic vision insights",
			},
			{
				Title:       "Director/Head Level Leadership Position",
				Description: "Positioned for Director/Head of Product/Head of Program leadership roles based on strategic vision and execution excellence",
			},
		},
		LastUpdated: time.Now().UTC(),
	}
}
