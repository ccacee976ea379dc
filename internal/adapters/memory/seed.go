package memory

import (
	"time"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedSnapshot returns the built-in catalog used when no database and no
// content file are configured. It is also what `vlsi-web seed` loads into a
// fresh database.
func SeedSnapshot() Snapshot {
	return Snapshot{
		Projects:       seedProjects(),
		Members:        seedMembers(),
		MemberProjects: seedMemberProjects(),
		Assets:         seedAssets(),
		Settings:       seedSettings(),
	}
}

func seedProjects() []domain.Project {
	return []domain.Project{
		{
			ID:           "1",
			Slug:         "neural-processor",
			Title:        "Neural Network Processor",
			Category:     domain.CategoryVLSI,
			Description:  "Custom ASIC design for accelerating neural network inference at the edge with ultra-low power consumption.",
			Content:      neuralProcessorContent,
			ThumbnailURL: "https://images.unsplash.com/photo-1518770660439-4636190af475?w=1200",
			Featured:     true,
			Status:       domain.StatusPublished,
			CreatedAt:    date(2023, time.January, 10),
			UpdatedAt:    date(2024, time.January, 15),
			Timeline: []domain.TimelineEvent{
				{ID: "t1", ProjectID: "1", Title: "Project Kickoff", Description: "Initial architecture planning and team formation.", Date: date(2023, time.January, 15), OrderIndex: 1},
				{ID: "t2", ProjectID: "1", Title: "RTL Design Complete", Description: "Completed Verilog implementation of the core processor.", Date: date(2023, time.March, 1), OrderIndex: 2},
				{ID: "t3", ProjectID: "1", Title: "Synthesis & Timing Closure", Description: "Achieved timing closure at 500MHz.", Date: date(2023, time.May, 15), OrderIndex: 3},
				{ID: "t4", ProjectID: "1", Title: "Tape-out", Description: "Submitted final design for fabrication.", Date: date(2023, time.July, 1), OrderIndex: 4},
				{ID: "t5", ProjectID: "1", Title: "Silicon Validation", Description: "Received first silicon samples and began testing.", Date: date(2023, time.October, 1), OrderIndex: 5},
				{ID: "t6", ProjectID: "1", Title: "Project Complete", Description: "Full validation complete, ready for production.", Date: date(2023, time.December, 1), OrderIndex: 6},
			},
			Media: []domain.ProjectMedia{
				{ID: "pm1", ProjectID: "1", Type: domain.MediaImage, URL: "https://images.unsplash.com/photo-1518770660439-4636190af475?w=1200", Caption: "Chip Die Photo", OrderIndex: 1},
				{ID: "pm2", ProjectID: "1", Type: domain.MediaImage, URL: "https://images.unsplash.com/photo-1555664424-778a1e5e1b48?w=1200", Caption: "Development Board", OrderIndex: 2},
				{ID: "pm3", ProjectID: "1", Type: domain.MediaImage, URL: "https://images.unsplash.com/photo-1581092921461-eab62e97a780?w=1200", Caption: "Lab Testing", OrderIndex: 3},
				{ID: "pm4", ProjectID: "1", Type: domain.MediaVideo, URL: "https://www.youtube.com/embed/dQw4w9WgXcQ", Caption: "Demo Video", OrderIndex: 4},
			},
		},
		{
			ID:           "2",
			Slug:         "autonomous-robot",
			Title:        "Autonomous Navigation Robot",
			Category:     domain.CategoryAIRobotics,
			Description:  "Self-navigating robot using computer vision and SLAM algorithms for indoor navigation.",
			ThumbnailURL: "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=600",
			Status:       domain.StatusPublished,
			CreatedAt:    date(2023, time.February, 20),
			UpdatedAt:    date(2024, time.January, 14),
		},
		{
			ID:           "3",
			Slug:         "fpga-accelerator",
			Title:        "FPGA ML Accelerator",
			Category:     domain.CategoryVLSI,
			Description:  "High-performance FPGA-based machine learning inference engine for real-time processing.",
			ThumbnailURL: "https://images.unsplash.com/photo-1555664424-778a1e5e1b48?w=600",
			Status:       domain.StatusDraft,
			CreatedAt:    date(2023, time.April, 5),
			UpdatedAt:    date(2024, time.January, 13),
		},
		{
			ID:           "4",
			Slug:         "robotic-arm",
			Title:        "Intelligent Robotic Arm",
			Category:     domain.CategoryAIRobotics,
			Description:  "AI-powered robotic arm with precise motion control and object recognition capabilities.",
			ThumbnailURL: "https://images.unsplash.com/photo-1561557944-6e7860d1a7eb?w=600",
			Status:       domain.StatusPublished,
			CreatedAt:    date(2023, time.June, 12),
			UpdatedAt:    date(2024, time.January, 12),
		},
		{
			ID:           "5",
			Slug:         "power-management-ic",
			Title:        "Power Management IC",
			Category:     domain.CategoryVLSI,
			Description:  "Advanced power management integrated circuit for IoT devices with 95% efficiency.",
			ThumbnailURL: "https://images.unsplash.com/photo-1518770660439-4636190af475?w=600",
			Status:       domain.StatusPublished,
			CreatedAt:    date(2023, time.August, 3),
			UpdatedAt:    date(2024, time.January, 11),
		},
		{
			ID:           "6",
			Slug:         "drone-swarm",
			Title:        "Drone Swarm Intelligence",
			Category:     domain.CategoryAIRobotics,
			Description:  "Coordinated drone fleet system using swarm intelligence algorithms for search and rescue.",
			ThumbnailURL: "https://images.unsplash.com/photo-1508614589041-895b88991e3e?w=600",
			Status:       domain.StatusDraft,
			CreatedAt:    date(2023, time.September, 18),
			UpdatedAt:    date(2024, time.January, 10),
		},
	}
}

const neuralProcessorContent = `## Overview

This project focuses on designing a custom Application-Specific Integrated Circuit (ASIC) optimized for neural network inference. The processor is specifically architected for edge computing scenarios where power efficiency is paramount.

## Key Features

- **Ultra-low power consumption**: Operating at just 5mW during inference
- **High throughput**: Capable of processing 1000+ inferences per second
- **Compact design**: Only 2mm² die area
- **Flexible architecture**: Supports various neural network topologies

## Technical Specifications

| Specification | Value |
|--------------|-------|
| Process Node | 28nm CMOS |
| Operating Voltage | 0.8V - 1.1V |
| Clock Frequency | 500 MHz |
| On-chip Memory | 512KB SRAM |
| Interface | SPI, I2C |

## Applications

This processor is ideal for IoT devices, wearables, and embedded systems that require on-device AI capabilities without cloud connectivity.`

func seedMembers() []domain.TeamMember {
	return []domain.TeamMember{
		{
			ID:          "1",
			Slug:        "sarah-chen",
			Name:        "Dr. Sarah Chen",
			Role:        "Lab Director",
			Bio:         sarahChenBio,
			PhotoURL:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=600",
			ResumeURL:   "/resumes/sarah-chen.pdf",
			Email:       "sarah@university.edu",
			LinkedInURL: "https://linkedin.com",
			GitHubURL:   "https://github.com",
			CreatedAt:   date(2020, time.September, 1),
			Skills:      []string{"VLSI Design", "ASIC Development", "Low-Power Design", "Neuromorphic Computing", "Team Leadership"},
			Education: []domain.Education{
				{Degree: "Ph.D. Electrical Engineering", Institution: "MIT", Year: "2008"},
				{Degree: "M.S. Computer Engineering", Institution: "Stanford University", Year: "2004"},
				{Degree: "B.S. Electronics Engineering", Institution: "UC Berkeley", Year: "2002"},
			},
			Publications: []domain.Publication{
				{Title: "Ultra-Low Power Neural Accelerator for Edge Computing", Venue: "IEEE ISSCC 2023"},
				{Title: "Neuromorphic Computing: A Survey", Venue: "ACM Computing Surveys 2022"},
			},
		},
		{
			ID:          "2",
			Slug:        "michael-park",
			Name:        "Michael Park",
			Role:        "Senior RTL Designer",
			Bio:         "Expert in Verilog/SystemVerilog with focus on high-performance processor design.",
			PhotoURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			Email:       "michael@university.edu",
			LinkedInURL: "https://linkedin.com",
			GitHubURL:   "https://github.com",
			CreatedAt:   date(2021, time.February, 15),
		},
		{
			ID:          "3",
			Slug:        "emily-johnson",
			Name:        "Emily Johnson",
			Role:        "AI/ML Research Lead",
			Bio:         "Specializing in deep learning optimization and edge AI deployment.",
			PhotoURL:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
			Email:       "emily@university.edu",
			LinkedInURL: "https://linkedin.com",
			GitHubURL:   "https://github.com",
			CreatedAt:   date(2021, time.August, 23),
		},
		{
			ID:          "4",
			Slug:        "david-kumar",
			Name:        "David Kumar",
			Role:        "Robotics Engineer",
			Bio:         "Building autonomous systems with expertise in computer vision and motion planning.",
			PhotoURL:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
			Email:       "david@university.edu",
			LinkedInURL: "https://linkedin.com",
			GitHubURL:   "https://github.com",
			CreatedAt:   date(2022, time.January, 10),
		},
		{
			ID:          "5",
			Slug:        "anna-martinez",
			Name:        "Anna Martinez",
			Role:        "PhD Candidate",
			Bio:         "Researching neuromorphic computing architectures for low-power AI applications.",
			PhotoURL:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400",
			Email:       "anna@university.edu",
			LinkedInURL: "https://linkedin.com",
			GitHubURL:   "https://github.com",
			CreatedAt:   date(2022, time.September, 5),
		},
		{
			ID:          "6",
			Slug:        "james-wilson",
			Name:        "James Wilson",
			Role:        "Graduate Researcher",
			Bio:         "Working on FPGA-based accelerators for real-time signal processing.",
			PhotoURL:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400",
			Email:       "james@university.edu",
			LinkedInURL: "https://linkedin.com",
			GitHubURL:   "https://github.com",
			CreatedAt:   date(2023, time.January, 30),
		},
	}
}

const sarahChenBio = `Dr. Sarah Chen is the founding director of the VLSI Research Lab, bringing over 15 years of experience in semiconductor design and research. She received her Ph.D. in Electrical Engineering from MIT and has published extensively in top-tier conferences and journals.

Her research interests span low-power VLSI design, neuromorphic computing, and hardware accelerators for machine learning. Under her leadership, the lab has secured multiple grants and industry partnerships.

Prior to joining academia, Dr. Chen worked at Intel and NVIDIA, contributing to several commercial processor designs. She holds 12 patents in integrated circuit design.`

func seedMemberProjects() []domain.MemberProject {
	return []domain.MemberProject{
		{ID: "mp1", TeamMemberID: "1", ProjectID: "1", Contribution: "Project Lead - Directed the entire design and verification effort."},
		{ID: "mp2", TeamMemberID: "1", ProjectID: "3", Contribution: "Technical Advisor - Provided architectural guidance."},
		{ID: "mp3", TeamMemberID: "2", ProjectID: "1", Contribution: "RTL Designer - Implemented the processor core in SystemVerilog."},
		{ID: "mp4", TeamMemberID: "3", ProjectID: "1", Contribution: "Verification Engineer - Built the UVM verification environment."},
		{ID: "mp5", TeamMemberID: "4", ProjectID: "2", Contribution: "Lead Engineer - Designed the SLAM navigation stack."},
		{ID: "mp6", TeamMemberID: "4", ProjectID: "4", Contribution: "Motion Planning - Developed the arm trajectory planner."},
		{ID: "mp7", TeamMemberID: "6", ProjectID: "3", Contribution: "FPGA Implementation - Ported the inference engine to hardware."},
	}
}

func seedAssets() []domain.MediaAsset {
	return []domain.MediaAsset{
		{ID: "1", Name: "chip-die-photo.jpg", Type: domain.MediaImage, URL: "https://images.unsplash.com/photo-1518770660439-4636190af475?w=300", SizeBytes: 2516582, UploadedAt: date(2024, time.January, 15)},
		{ID: "2", Name: "robot-arm.jpg", Type: domain.MediaImage, URL: "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=300", SizeBytes: 1887436, UploadedAt: date(2024, time.January, 14)},
		{ID: "3", Name: "fpga-board.jpg", Type: domain.MediaImage, URL: "https://images.unsplash.com/photo-1555664424-778a1e5e1b48?w=300", SizeBytes: 3250585, UploadedAt: date(2024, time.January, 13)},
		{ID: "4", Name: "demo-video.mp4", Type: domain.MediaVideo, URL: "#", SizeBytes: 47395635, UploadedAt: date(2024, time.January, 12)},
		{ID: "5", Name: "lab-photo.jpg", Type: domain.MediaImage, URL: "https://images.unsplash.com/photo-1581092921461-eab62e97a780?w=300", SizeBytes: 3040870, UploadedAt: date(2024, time.January, 11)},
		{ID: "6", Name: "team-photo.jpg", Type: domain.MediaImage, URL: "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=300", SizeBytes: 4404019, UploadedAt: date(2024, time.January, 10)},
	}
}

func seedSettings() []domain.SiteSetting {
	return []domain.SiteSetting{
		{
			ID:  "s1",
			Key: domain.SettingSiteInfo,
			Value: map[string]any{
				"title":    "VLSI Research Lab",
				"tagline":  "Advancing the frontiers of chip design and intelligent systems",
				"subtitle": "Explore our innovative projects in VLSI design and AI/Robotics",
			},
		},
		{
			ID:  "s2",
			Key: domain.SettingAbout,
			Value: map[string]any{
				"heading": "About the Lab",
				"body":    "The VLSI Research Lab is a university research group working at the intersection of integrated circuit design and intelligent systems. Our projects range from ultra-low-power ASICs to autonomous robotics platforms.",
			},
		},
		{
			ID:  "s3",
			Key: domain.SettingContact,
			Value: map[string]any{
				"email":   "lab@university.edu",
				"address": "Engineering Building, Room 4021",
			},
		},
	}
}
