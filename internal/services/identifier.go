package services

import (
	"fmt"

	"github.com/google/uuid"
)

// LearningPathID derives a stable identifier for the virtual learning path
// built from one course inside a recommendation batch. Those entries are
// never stored on their own, so list, read and delete must all recompute the
// same id: a name-based (version 5) UUID over the DNS namespace of the
// employee/course/source tuple. Two courses with an identical tuple collide
// on purpose; delete treats them as the same entry.
func LearningPathID(employee, courseName, source string) string {
	name := fmt.Sprintf("%s-%s-%s", employee, courseName, source)
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(name)).String()
}
