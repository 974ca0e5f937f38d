package leaveRepo

// The constructor must hand back the concrete repo so startup code can
// reach EnsureIndexes; returning the interface would hide it and the
// availability lookup index would never be created.
var _ func() *MongoLeaveRepo = NewMongoLeaveRepo

var _ LeaveRepository = (*MongoLeaveRepo)(nil)
