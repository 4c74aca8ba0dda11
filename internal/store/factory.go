package store

type Stores struct {
	currencies    *CurrencyStore
	countries     *CountryStore
	languages     *LanguageStore
	cities        *CityStore
	locations     *LocationStore
	organizations *OrganizationStore
	contacts      *ContactStore
	users         *UserStore
}

func NewStores(database Database, limits Limits) *Stores {
	return &Stores{
		currencies:    newCurrencyStore(database, limits),
		countries:     newCountryStore(database, limits),
		languages:     newLanguageStore(database, limits),
		cities:        newCityStore(database, limits),
		locations:     newLocationStore(database, limits),
		organizations: newOrganizationStore(database, limits),
		contacts:      newContactStore(database, limits),
		users:         newUserStore(database, limits),
	}
}

func (s *Stores) Currencies() *CurrencyStore {
	return s.currencies
}

func (s *Stores) Countries() *CountryStore {
	return s.countries
}

func (s *Stores) Languages() *LanguageStore {
	return s.languages
}

func (s *Stores) Cities() *CityStore {
	return s.cities
}

func (s *Stores) Locations() *LocationStore {
	return s.locations
}

func (s *Stores) Organizations() *OrganizationStore {
	return s.organizations
}

func (s *Stores) Contacts() *ContactStore {
	return s.contacts
}

func (s *Stores) Users() *UserStore {
	return s.users
}
