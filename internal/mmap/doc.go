// Package mmap maps model resource files into memory read-only.
//
// Vector resources are typically several gigabytes. Mapping them lets the
// decoder walk the file sequentially without copying it through a read
// buffer, and the kernel can drop pages behind the cursor once it has been
// told the access pattern:
//
//	m, err := mmap.Open("GoogleNews-vectors-negative300.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix uses mmap(2) and madvise(2). Windows uses CreateFileMapping and
// MapViewOfFile; Advise is a no-op there.
//
// A Mapping is safe for concurrent reads. Close is idempotent, but callers
// must not touch the slice returned by Bytes after Close returns.
package mmap
