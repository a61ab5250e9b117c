package repository

import "go.mongodb.org/mongo-driver/bson"

// SearchFilter membangun filter substring case-insensitive ($regex, opsi "i")
// dengan $or atas beberapa field. Query kosong berarti tanpa filter.
func SearchFilter(q string, fields ...string) bson.M {
	if q == "" {
		return bson.M{}
	}
	or := bson.A{}
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": q, "$options": "i"}})
	}
	return bson.M{"$or": or}
}
