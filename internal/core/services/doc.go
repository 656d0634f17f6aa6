// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Normalise, FilterByKeyword and TopN are pure functions; VacancyService
// strings them together between a ListingSource and a VacancyStore.
package services
