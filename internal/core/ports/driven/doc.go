// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ListingSource: Fetches raw listings for a keyword (HeadHunter connector)
//   - HTTPClient: Performs GET requests on behalf of a ListingSource
//   - VacancyStore: Vacancy persistence (JSON file, SQLite or memory)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - StoreWatcher: Change notifications for a store. Only the JSON file
//     backend implements it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
