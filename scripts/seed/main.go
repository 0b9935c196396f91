package main

import (
	"fmt"
	"log"

	"github.com/dmapsite/internal/config"
	"github.com/dmapsite/internal/db"
	"github.com/dmapsite/internal/storage"
)

// Seeds the database with the site's launch content. Singletons are
// upserted; list entities are wiped and re-inserted so the script can be
// re-run safely.
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	store := storage.New(db.DB)

	fmt.Println("Seeding company information...")
	if _, err := store.UpdateCompany(storage.CompanyInput{
		Name:    "DMAP Retrofit Construction Company",
		Tagline: "Experts in Retrofitting, Reconstruction & Civil Works",
		Mission: "Reinforcing India's infrastructure with precision, integrity, and reliability.",
	}); err != nil {
		log.Fatalf("seed company: %v", err)
	}

	fmt.Println("Seeding about information...")
	if _, err := store.UpdateAbout(storage.AboutInput{
		Description: "DMAP Retrofit Construction Company is a civil engineering firm with over 5 years of experience, " +
			"specializing in the strengthening, restoration, and reconstruction of buildings and infrastructure across India. " +
			"Our operations are powered by a team of experienced technical contractors, guided by strong industry expertise " +
			"and a commitment to quality, safety, and compliance.",
		Domains: db.StringList{
			"Public and government buildings",
			"Residential and commercial complexes",
			"Institutional and industrial projects",
			"Infrastructure and utility structures",
		},
	}); err != nil {
		log.Fatalf("seed about: %v", err)
	}

	fmt.Println("Seeding contact information...")
	if _, err := store.UpdateContact(storage.ContactInput{
		Phone:    "+91-9987082530",
		Email:    "dmaprccmum@gmail.com",
		Location: "Fort, Mumbai, Maharashtra",
	}); err != nil {
		log.Fatalf("seed contact: %v", err)
	}

	seedCertifications(store)
	seedServices(store)
	seedProjects(store)
	seedClients(store)

	fmt.Println("Database seeding completed successfully!")
}

func seedCertifications(store *storage.Storage) {
	fmt.Println("Seeding certifications...")
	if err := db.DB.Where("1 = 1").Delete(&db.Certification{}).Error; err != nil {
		log.Fatalf("clear certifications: %v", err)
	}

	names := []string{
		"MSME Registered",
		"GST Compliant",
		"ESIC Licensed",
		"EPF for Technical Contractor Network",
		"Full Documentation and Tax Invoice System",
		"Safety-focused Execution",
	}
	for _, name := range names {
		if _, err := store.CreateCertification(storage.CertificationInput{Name: name}); err != nil {
			log.Fatalf("seed certification %q: %v", name, err)
		}
	}
}

func seedServices(store *storage.Storage) {
	fmt.Println("Seeding services...")
	if err := db.DB.Where("1 = 1").Delete(&db.Service{}).Error; err != nil {
		log.Fatalf("clear services: %v", err)
	}

	titles := []string{
		"Seismic Retrofitting",
		"RCC Jacketing & Structural Strengthening",
		"Concrete Crack Injection & Repairs",
		"Waterproofing Solutions",
		"Structural Steel Fabrication",
		"Residential, Commercial & Industrial Civil Works",
		"Infrastructure Project Execution",
		"On-site Technical Consultation & Supervision",
	}
	for _, title := range titles {
		if _, err := store.CreateService(storage.ServiceInput{
			Title:            title,
			ShortDescription: fmt.Sprintf("Professional %s services provided by DMAP Retrofit Construction Company.", title),
			FullDescription: fmt.Sprintf("Our %s services are delivered with the highest standards of quality and safety, "+
				"ensuring optimal results for your construction and infrastructure needs.", title),
			Benefits: db.StringList{
				"Cost-effective solutions",
				"Expert technical team",
				"Quality assurance",
				"Timely delivery",
			},
		}); err != nil {
			log.Fatalf("seed service %q: %v", title, err)
		}
	}
}

func seedProjects(store *storage.Storage) {
	fmt.Println("Seeding projects...")
	if err := db.DB.Where("1 = 1").Delete(&db.Project{}).Error; err != nil {
		log.Fatalf("clear projects: %v", err)
	}

	projects := []struct {
		title       string
		description string
		location    string
		status      string
	}{
		{"MTNL TE Building – Cuffe Parade, Mumbai", "Structural strengthening of beams and columns for service continuity.", "Cuffe Parade, Mumbai", db.ProjectStatusCompleted},
		{"MTNL TE Buildings – Vashi & Turbhe, Navi Mumbai", "External repairs, stairwell upgrades, and structural retrofitting of telecom buildings.", "Vashi & Turbhe, Navi Mumbai", db.ProjectStatusCompleted},
		{"MTNL TE Building – Fort, Mumbai", "Floor slab restoration, fountain structure repairs, and RCC enhancement using fiber wrapping.", "Fort, Mumbai", db.ProjectStatusCompleted},
		{"Acharya Atre CHS, Navi Mumbai", "Seismic retrofitting and structural works.", "Navi Mumbai", db.ProjectStatusOngoing},
		{"Meteorological Centre – Colaba, Mumbai", "Terrace waterproofing and structural protection.", "Colaba, Mumbai", db.ProjectStatusCompleted},
		{"Deepak Builder Project – Nashik", "Column strengthening and concrete rehabilitation.", "Nashik", db.ProjectStatusOngoing},
		{"Goodway Chemicals – Sarigram, Umbergaon, Gujarat", "Composite structural wrapping and enhancement.", "Sarigram, Umbergaon, Gujarat", db.ProjectStatusCompleted},
		{"Invera Testing & Inspection Lab Pvt. Ltd.", "Advanced structural strengthening works.", "Maharashtra, India", db.ProjectStatusCompleted},
		{"Jawadwala Construction Projects – PAN India", "Civil and structural retrofitting and restoration.", "PAN India", db.ProjectStatusOngoing},
		{"ShreeJee Plaza – Siddharth Enterprises", "Composite Carbon Fibre Wrapping.", "Maharashtra, India", db.ProjectStatusCompleted},
	}
	for _, p := range projects {
		completion := "Completed"
		if p.status == db.ProjectStatusOngoing {
			completion = "In Progress"
		}
		if _, err := store.CreateProject(storage.ProjectInput{
			Title:            p.title,
			ShortDescription: p.description,
			FullDescription: fmt.Sprintf("%s: %s This project showcases our expertise in structural engineering "+
				"and retrofitting solutions.", p.title, p.description),
			Status:     p.status,
			Location:   p.location,
			Services:   db.StringList{"Structural Strengthening", "Retrofitting"},
			Client:     "DMAP Construction Client",
			Completion: completion,
		}); err != nil {
			log.Fatalf("seed project %q: %v", p.title, err)
		}
	}
}

func seedClients(store *storage.Storage) {
	fmt.Println("Seeding clients...")
	if err := db.DB.Where("1 = 1").Delete(&db.Client{}).Error; err != nil {
		log.Fatalf("clear clients: %v", err)
	}

	names := []string{
		"Good Will Chemical (Maruti Construction)",
		"Sarigram",
		"Mahendra Realtors and Infra Ltd",
		"Shrikrishna Construction",
		"Niroshi Construction",
		"Siddharth Enterprises (Shrejee)",
		"J Kumar",
		"Prasar Bharti",
		"Invra Lab",
		"Jawadwala Construction",
	}
	for _, name := range names {
		if _, err := store.CreateClient(storage.ClientInput{Name: name}); err != nil {
			log.Fatalf("seed client %q: %v", name, err)
		}
	}
}
