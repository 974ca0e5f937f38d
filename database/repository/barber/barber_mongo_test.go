package barberRepo

var _ func() *MongoBarberRepo = NewMongoBarberRepo

var _ BarberRepository = (*MongoBarberRepo)(nil)
