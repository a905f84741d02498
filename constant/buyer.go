package constant

type City string

const (
	CityChandigarh City = "Chandigarh"
	CityMohali     City = "Mohali"
	CityZirakpur   City = "Zirakpur"
	CityPanchkula  City = "Panchkula"
	CityOther      City = "Other"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "Apartment"
	PropertyVilla     PropertyType = "Villa"
	PropertyPlot      PropertyType = "Plot"
	PropertyOffice    PropertyType = "Office"
	PropertyRetail    PropertyType = "Retail"
)

// RequiresBHK reports whether a bhk value must accompany the property type.
func (p PropertyType) RequiresBHK() bool {
	return p == PropertyApartment || p == PropertyVilla
}

type BHK string

const (
	BHK1      BHK = "1"
	BHK2      BHK = "2"
	BHK3      BHK = "3"
	BHK4      BHK = "4"
	BHKStudio BHK = "Studio"
)

type Purpose string

const (
	PurposeBuy  Purpose = "Buy"
	PurposeRent Purpose = "Rent"
)

type Timeline string

const (
	Timeline0To3Months Timeline = "0-3m"
	Timeline3To6Months Timeline = "3-6m"
	TimelineOver6Month Timeline = ">6m"
	TimelineExploring  Timeline = "Exploring"
)

type Source string

const (
	SourceWebsite  Source = "Website"
	SourceReferral Source = "Referral"
	SourceWalkIn   Source = "Walk-in"
	SourceCall     Source = "Call"
	SourceOther    Source = "Other"
)

type BuyerStatus string

const (
	BuyerStatusNew         BuyerStatus = "New"
	BuyerStatusQualified   BuyerStatus = "Qualified"
	BuyerStatusContacted   BuyerStatus = "Contacted"
	BuyerStatusVisited     BuyerStatus = "Visited"
	BuyerStatusNegotiation BuyerStatus = "Negotiation"
	BuyerStatusConverted   BuyerStatus = "Converted"
	BuyerStatusDropped     BuyerStatus = "Dropped"
)

// Allowed values per enum field, in display order. Keys are the JSON field names.
var (
	Cities        = []string{string(CityChandigarh), string(CityMohali), string(CityZirakpur), string(CityPanchkula), string(CityOther)}
	PropertyTypes = []string{string(PropertyApartment), string(PropertyVilla), string(PropertyPlot), string(PropertyOffice), string(PropertyRetail)}
	BHKs          = []string{string(BHK1), string(BHK2), string(BHK3), string(BHK4), string(BHKStudio)}
	Purposes      = []string{string(PurposeBuy), string(PurposeRent)}
	Timelines     = []string{string(Timeline0To3Months), string(Timeline3To6Months), string(TimelineOver6Month), string(TimelineExploring)}
	Sources       = []string{string(SourceWebsite), string(SourceReferral), string(SourceWalkIn), string(SourceCall), string(SourceOther)}
	BuyerStatuses = []string{string(BuyerStatusNew), string(BuyerStatusQualified), string(BuyerStatusContacted), string(BuyerStatusVisited), string(BuyerStatusNegotiation), string(BuyerStatusConverted), string(BuyerStatusDropped)}
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// Buyer event actions published to the broker.
const (
	BuyerEventCreated  = "created"
	BuyerEventUpdated  = "updated"
	BuyerEventDeleted  = "deleted"
	BuyerEventImported = "imported"
)
