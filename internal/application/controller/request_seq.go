package controller

// requestSeq numera las cargas de una lista. Solo se aplica la respuesta de la
// última carga emitida: una respuesta vieja que llega tarde se descarta.
// No es seguro para uso concurrente; se protege con el mutex del controlador.
type requestSeq struct {
	last uint64
}

func (s *requestSeq) next() uint64 {
	s.last++
	return s.last
}

func (s *requestSeq) isLatest(n uint64) bool {
	return n == s.last
}
