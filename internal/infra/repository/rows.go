package repository

// Partition groups of the single-table layout.
const (
	vehiclePartition = "Vehicle"
	clientPartition  = "Client"
	rentalPartition  = "Rental"
)

// Row structs mirror the stored attribute names (the published Portuguese
// wire vocabulary). Keys are duplicated into natural attributes so partition
// scans decode without touching PK/SK.

type vehicleRow struct {
	Plate     string  `dynamodbav:"placa"`
	Brand     string  `dynamodbav:"marca"`
	Model     string  `dynamodbav:"modelo"`
	Year      int     `dynamodbav:"ano"`
	DailyRate float64 `dynamodbav:"diaria"`
	ImageURL  string  `dynamodbav:"imagem,omitempty"`
	Available bool    `dynamodbav:"disponivel"`
}

type clientRow struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"nome"`
	Email string `dynamodbav:"email,omitempty"`
	Phone string `dynamodbav:"telefone,omitempty"`
}

type rentalRow struct {
	ID           string  `dynamodbav:"id"`
	VehiclePlate string  `dynamodbav:"placa"`
	ClientID     string  `dynamodbav:"clienteId"`
	StartDate    string  `dynamodbav:"dataInicio"`
	EndDate      string  `dynamodbav:"dataFim"`
	TotalValue   float64 `dynamodbav:"valorTotal"`
	Status       string  `dynamodbav:"status"`
	Brand        string  `dynamodbav:"marca"`
	Model        string  `dynamodbav:"modelo"`
}
