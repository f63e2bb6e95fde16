package repository

import "civicsprep-backend/internal/model"

// civicsQuestions is the static civics corpus. Ids are stable and never
// reused. Each entry carries every phrasing the bank accepts; matching is
// an OR across the set.
var civicsQuestions = []model.CivicsQuestion{
	{ID: 1, Category: "principles",
		Question:    "What is the supreme law of the land?",
		QuestionEs:  "¿Cuál es la ley suprema de la nación?",
		Answers:     []string{"the Constitution"},
		Explanation: "The Constitution is the highest law; every other law must agree with it."},
	{ID: 2, Category: "principles",
		Question:    "What does the Constitution do?",
		QuestionEs:  "¿Qué hace la Constitución?",
		Answers:     []string{"sets up the government", "defines the government", "protects basic rights of Americans"},
		Explanation: "It establishes the structure of government and protects basic rights."},
	{ID: 3, Category: "principles",
		Question:    "The idea of self-government is in the first three words of the Constitution. What are these words?",
		QuestionEs:  "La idea de autogobierno está en las primeras tres palabras de la Constitución. ¿Cuáles son estas palabras?",
		Answers:     []string{"We the People"},
		Explanation: "The opening words show that the power of government comes from the people."},
	{ID: 4, Category: "principles",
		Question:    "What is an amendment?",
		QuestionEs:  "¿Qué es una enmienda?",
		Answers:     []string{"a change to the Constitution", "an addition to the Constitution"},
		Explanation: "An amendment changes or adds to the Constitution."},
	{ID: 5, Category: "principles",
		Question:    "What do we call the first ten amendments to the Constitution?",
		QuestionEs:  "¿Con qué nombre se conocen las primeras diez enmiendas a la Constitución?",
		Answers:     []string{"the Bill of Rights"},
		Explanation: "The first ten amendments are the Bill of Rights."},
	{ID: 6, Category: "principles",
		Question:    "What is one right or freedom from the First Amendment?",
		QuestionEs:  "¿Cuál es un derecho o libertad de la Primera Enmienda?",
		Answers:     []string{"speech", "religion", "assembly", "press", "petition the government"},
		Explanation: "The First Amendment protects speech, religion, assembly, press, and petition."},
	{ID: 7, Category: "principles",
		Question:    "How many amendments does the Constitution have?",
		QuestionEs:  "¿Cuántas enmiendas tiene la Constitución?",
		Answers:     []string{"27", "twenty-seven"},
		Explanation: "The Constitution has twenty-seven amendments."},
	{ID: 8, Category: "principles",
		Question:    "What did the Declaration of Independence do?",
		QuestionEs:  "¿Qué hizo la Declaración de Independencia?",
		Answers:     []string{"announced our independence from Great Britain", "declared our independence from Great Britain", "said that the United States is free from Great Britain"},
		Explanation: "It announced the colonies' independence from Great Britain."},
	{ID: 9, Category: "principles",
		Question:    "What are two rights in the Declaration of Independence?",
		QuestionEs:  "¿Cuáles son dos derechos en la Declaración de la Independencia?",
		Answers:     []string{"life and liberty", "liberty and the pursuit of happiness", "life and the pursuit of happiness"},
		Explanation: "Life, liberty, and the pursuit of happiness."},
	{ID: 10, Category: "principles",
		Question:    "What is freedom of religion?",
		QuestionEs:  "¿En qué consiste la libertad de religión?",
		Answers:     []string{"you can practice any religion, or not practice a religion"},
		Explanation: "You may practice any religion, or none at all."},
	{ID: 11, Category: "principles",
		Question:    "What is the economic system in the United States?",
		QuestionEs:  "¿Cuál es el sistema económico de los Estados Unidos?",
		Answers:     []string{"capitalist economy", "market economy"},
		Explanation: "The United States has a capitalist, market-based economy."},
	{ID: 12, Category: "principles",
		Question:    "What is the rule of law?",
		QuestionEs:  "¿En qué consiste el estado de derecho?",
		Answers:     []string{"everyone must follow the law", "leaders must obey the law", "government must obey the law", "no one is above the law"},
		Explanation: "Everyone, including leaders and the government, must obey the law."},
	{ID: 13, Category: "system",
		Question:    "Name one branch or part of the government.",
		QuestionEs:  "Nombre una rama o parte del gobierno.",
		Answers:     []string{"Congress", "legislative", "President", "executive", "the courts", "judicial"},
		Explanation: "The three branches are legislative, executive, and judicial."},
	{ID: 14, Category: "system",
		Question:    "What stops one branch of government from becoming too powerful?",
		QuestionEs:  "¿Qué es lo que impide que una rama del gobierno se vuelva demasiado poderosa?",
		Answers:     []string{"checks and balances", "separation of powers"},
		Explanation: "Checks and balances keep the branches in balance."},
	{ID: 15, Category: "system",
		Question:    "Who is in charge of the executive branch?",
		QuestionEs:  "¿Quién está a cargo de la rama ejecutiva?",
		Answers:     []string{"the President"},
		Explanation: "The President heads the executive branch."},
	{ID: 16, Category: "system",
		Question:    "Who makes federal laws?",
		QuestionEs:  "¿Quién crea las leyes federales?",
		Answers:     []string{"Congress", "Senate and House of Representatives", "the legislature"},
		Explanation: "Congress, made up of the Senate and the House, makes federal laws."},
	{ID: 17, Category: "system",
		Question:    "What are the two parts of the U.S. Congress?",
		QuestionEs:  "¿Cuáles son las dos partes que integran el Congreso de los Estados Unidos?",
		Answers:     []string{"the Senate and House of Representatives"},
		Explanation: "Congress has two chambers: the Senate and the House."},
	{ID: 18, Category: "system",
		Question:    "How many U.S. Senators are there?",
		QuestionEs:  "¿Cuántos senadores de los Estados Unidos hay?",
		Answers:     []string{"100", "one hundred"},
		Explanation: "There are one hundred senators, two from each state."},
	{ID: 19, Category: "system",
		Question:    "We elect a U.S. Senator for how many years?",
		QuestionEs:  "¿De cuántos años es el término de elección de un senador de los Estados Unidos?",
		Answers:     []string{"6", "six"},
		Explanation: "Senators serve six-year terms."},
	{ID: 20, Category: "system",
		Question:    "Who is one of your state's U.S. Senators now?",
		QuestionEs:  "Nombre a uno de los senadores actuales de los Estados Unidos de su estado.",
		Answers:     []string{"answers will vary"},
		Explanation: "Depends on the state of residence."},
	{ID: 21, Category: "system",
		Question:    "The House of Representatives has how many voting members?",
		QuestionEs:  "¿Cuántos miembros votantes tiene la Cámara de Representantes?",
		Answers:     []string{"435", "four hundred thirty-five"},
		Explanation: "The House has 435 voting members."},
	{ID: 22, Category: "system",
		Question:    "We elect a U.S. Representative for how many years?",
		QuestionEs:  "¿De cuántos años es el término de elección de un representante de los Estados Unidos?",
		Answers:     []string{"2", "two"},
		Explanation: "Representatives serve two-year terms."},
	{ID: 23, Category: "system",
		Question:    "Name your U.S. Representative.",
		QuestionEs:  "Dé el nombre de su representante a nivel nacional.",
		Answers:     []string{"answers will vary"},
		Explanation: "Depends on the district of residence."},
	{ID: 24, Category: "system",
		Question:    "Who does a U.S. Senator represent?",
		QuestionEs:  "¿A quiénes representa un senador de los Estados Unidos?",
		Answers:     []string{"all people of the state"},
		Explanation: "Senators represent everyone in their state."},
	{ID: 25, Category: "system",
		Question:    "Why do some states have more Representatives than other states?",
		QuestionEs:  "¿Por qué tienen algunos estados más representantes que otros?",
		Answers:     []string{"because of the state's population", "because they have more people", "because some states have more people"},
		Explanation: "Representation in the House is based on population."},
	{ID: 26, Category: "system",
		Question:    "We elect a President for how many years?",
		QuestionEs:  "¿De cuántos años es el término de elección de un presidente?",
		Answers:     []string{"4", "four"},
		Explanation: "The President serves a four-year term."},
	{ID: 27, Category: "system",
		Question:    "In what month do we vote for President?",
		QuestionEs:  "¿En qué mes votamos por un nuevo presidente?",
		Answers:     []string{"November"},
		Explanation: "Presidential elections are held in November."},
	{ID: 28, Category: "system",
		Question:    "What is the name of the President of the United States now?",
		QuestionEs:  "¿Cómo se llama el actual presidente de los Estados Unidos?",
		Answers:     []string{"answers will vary", "the current President"},
		Explanation: "Visit uscis.gov/citizenship/testupdates for the current answer."},
	{ID: 29, Category: "system",
		Question:    "What is the name of the Vice President of the United States now?",
		QuestionEs:  "¿Cómo se llama el actual vicepresidente de los Estados Unidos?",
		Answers:     []string{"answers will vary", "the current Vice President"},
		Explanation: "Visit uscis.gov/citizenship/testupdates for the current answer."},
	{ID: 30, Category: "system",
		Question:    "If the President can no longer serve, who becomes President?",
		QuestionEs:  "Si el presidente ya no puede cumplir sus funciones, ¿quién se convierte en presidente?",
		Answers:     []string{"the Vice President"},
		Explanation: "The Vice President is first in the line of succession."},
	{ID: 31, Category: "system",
		Question:    "If both the President and the Vice President can no longer serve, who becomes President?",
		QuestionEs:  "Si tanto el presidente como el vicepresidente ya no pueden cumplir sus funciones, ¿quién se convierte en presidente?",
		Answers:     []string{"the Speaker of the House"},
		Explanation: "The Speaker of the House is next after the Vice President."},
	{ID: 32, Category: "system",
		Question:    "Who is the Commander in Chief of the military?",
		QuestionEs:  "¿Quién es el comandante en jefe de las fuerzas armadas?",
		Answers:     []string{"the President"},
		Explanation: "The President commands the military."},
	{ID: 33, Category: "system",
		Question:    "Who signs bills to become laws?",
		QuestionEs:  "¿Quién firma los proyectos de ley para convertirlos en leyes?",
		Answers:     []string{"the President"},
		Explanation: "Bills become law with the President's signature."},
	{ID: 34, Category: "system",
		Question:    "Who vetoes bills?",
		QuestionEs:  "¿Quién veta los proyectos de ley?",
		Answers:     []string{"the President"},
		Explanation: "The President can veto bills passed by Congress."},
	{ID: 35, Category: "system",
		Question:    "What does the President's Cabinet do?",
		QuestionEs:  "¿Qué hace el gabinete del presidente?",
		Answers:     []string{"advises the President"},
		Explanation: "The Cabinet advises the President."},
	{ID: 36, Category: "system",
		Question:    "What are two Cabinet-level positions?",
		QuestionEs:  "¿Cuáles son dos puestos a nivel de gabinete?",
		Answers:     []string{"Secretary of State and Secretary of Defense", "Secretary of the Treasury and Attorney General", "Secretary of Labor and Secretary of Education"},
		Explanation: "Any two of the cabinet secretaries, the Attorney General, or the Vice President."},
	{ID: 37, Category: "system",
		Question:    "What does the judicial branch do?",
		QuestionEs:  "¿Qué hace la rama judicial?",
		Answers:     []string{"reviews laws", "explains laws", "resolves disputes", "decides if a law goes against the Constitution"},
		Explanation: "The courts review and explain laws and resolve disputes."},
	{ID: 38, Category: "system",
		Question:    "What is the highest court in the United States?",
		QuestionEs:  "¿Cuál es el tribunal más alto de los Estados Unidos?",
		Answers:     []string{"the Supreme Court"},
		Explanation: "The Supreme Court is the highest court."},
	{ID: 39, Category: "system",
		Question:    "How many justices are on the Supreme Court?",
		QuestionEs:  "¿Cuántos jueces hay en la Corte Suprema?",
		Answers:     []string{"9", "nine"},
		Explanation: "The Supreme Court has nine justices."},
	{ID: 40, Category: "system",
		Question:    "Who is the Chief Justice of the United States now?",
		QuestionEs:  "¿Quién es el presidente actual de la Corte Suprema de los Estados Unidos?",
		Answers:     []string{"John Roberts", "Roberts"},
		Explanation: "John G. Roberts, Jr. is the Chief Justice."},
	{ID: 41, Category: "system",
		Question:    "Under our Constitution, some powers belong to the federal government. What is one power of the federal government?",
		QuestionEs:  "De acuerdo con nuestra Constitución, algunos poderes pertenecen al gobierno federal. ¿Cuál es un poder del gobierno federal?",
		Answers:     []string{"to print money", "to declare war", "to create an army", "to make treaties"},
		Explanation: "Printing money, declaring war, creating an army, making treaties."},
	{ID: 42, Category: "system",
		Question:    "Under our Constitution, some powers belong to the states. What is one power of the states?",
		QuestionEs:  "De acuerdo con nuestra Constitución, algunos poderes pertenecen a los estados. ¿Cuál es un poder de los estados?",
		Answers:     []string{"provide schooling and education", "provide protection", "provide safety", "give a driver's license", "approve zoning and land use"},
		Explanation: "Education, police, driver's licenses, and zoning belong to the states."},
	{ID: 43, Category: "system",
		Question:    "Who is the Governor of your state now?",
		QuestionEs:  "¿Quién es el gobernador actual de su estado?",
		Answers:     []string{"answers will vary"},
		Explanation: "Depends on the state of residence."},
	{ID: 44, Category: "system",
		Question:    "What is the capital of your state?",
		QuestionEs:  "¿Cuál es la capital de su estado?",
		Answers:     []string{"answers will vary"},
		Explanation: "Depends on the state of residence."},
	{ID: 45, Category: "system",
		Question:    "What are the two major political parties in the United States?",
		QuestionEs:  "¿Cuáles son los dos principales partidos políticos de los Estados Unidos?",
		Answers:     []string{"Democratic and Republican"},
		Explanation: "The Democratic and Republican parties."},
	{ID: 46, Category: "system",
		Question:    "What is the political party of the President now?",
		QuestionEs:  "¿Cuál es el partido político del presidente actual?",
		Answers:     []string{"answers will vary"},
		Explanation: "Visit uscis.gov/citizenship/testupdates for the current answer."},
	{ID: 47, Category: "system",
		Question:    "What is the name of the Speaker of the House of Representatives now?",
		QuestionEs:  "¿Cómo se llama el actual presidente de la Cámara de Representantes?",
		Answers:     []string{"answers will vary", "the current Speaker"},
		Explanation: "Visit uscis.gov/citizenship/testupdates for the current answer."},
	{ID: 48, Category: "rights",
		Question:    "There are four amendments to the Constitution about who can vote. Describe one of them.",
		QuestionEs:  "Existen cuatro enmiendas a la Constitución sobre quién puede votar. Describa una de ellas.",
		Answers:     []string{"citizens eighteen and older can vote", "you don't have to pay a poll tax to vote", "any citizen can vote", "a male citizen of any race can vote"},
		Explanation: "Citizens eighteen and older of any race or gender can vote without a poll tax."},
	{ID: 49, Category: "rights",
		Question:    "What is one responsibility that is only for United States citizens?",
		QuestionEs:  "¿Cuál es una responsabilidad que corresponde únicamente a los ciudadanos de los Estados Unidos?",
		Answers:     []string{"serve on a jury", "vote in a federal election"},
		Explanation: "Serving on a jury and voting in federal elections are citizen-only duties."},
	{ID: 50, Category: "rights",
		Question:    "Name one right only for United States citizens.",
		QuestionEs:  "¿Cuál es un derecho que pueden ejercer únicamente los ciudadanos de los Estados Unidos?",
		Answers:     []string{"vote in a federal election", "run for federal office"},
		Explanation: "Voting in federal elections and running for federal office."},
	{ID: 51, Category: "rights",
		Question:    "What are two rights of everyone living in the United States?",
		QuestionEs:  "¿Cuáles son dos derechos que pueden ejercer todas las personas que viven en los Estados Unidos?",
		Answers:     []string{"freedom of expression and freedom of speech", "freedom of assembly and freedom of religion", "freedom of worship and the right to bear arms", "freedom to petition the government and freedom of religion"},
		Explanation: "Expression, speech, assembly, petition, religion, and bearing arms apply to everyone."},
	{ID: 52, Category: "rights",
		Question:    "What do we show loyalty to when we say the Pledge of Allegiance?",
		QuestionEs:  "¿A qué demostramos nuestra lealtad cuando decimos el Juramento de Lealtad?",
		Answers:     []string{"the United States", "the flag"},
		Explanation: "The Pledge shows loyalty to the flag and the United States."},
	{ID: 53, Category: "rights",
		Question:    "What is one promise you make when you become a United States citizen?",
		QuestionEs:  "¿Cuál es una promesa que usted hace cuando se convierte en ciudadano de los Estados Unidos?",
		Answers:     []string{"give up loyalty to other countries", "defend the Constitution and laws of the United States", "obey the laws of the United States", "serve the nation if needed", "be loyal to the United States"},
		Explanation: "New citizens promise loyalty, obedience to law, and defense of the Constitution."},
	{ID: 54, Category: "rights",
		Question:    "How old do citizens have to be to vote for President?",
		QuestionEs:  "¿Cuántos años tienen que tener los ciudadanos para votar por el presidente?",
		Answers:     []string{"18", "eighteen and older"},
		Explanation: "Citizens must be eighteen or older to vote."},
	{ID: 55, Category: "rights",
		Question:    "What are two ways that Americans can participate in their democracy?",
		QuestionEs:  "¿Cuáles son dos maneras mediante las cuales los estadounidenses pueden participar en su democracia?",
		Answers:     []string{"vote and join a political party", "help with a campaign and join a civic group", "give an elected official your opinion on an issue", "call Senators and Representatives", "run for office and write to a newspaper"},
		Explanation: "Voting, campaigning, joining groups, contacting officials, running for office."},
	{ID: 56, Category: "rights",
		Question:    "When is the last day you can send in federal income tax forms?",
		QuestionEs:  "¿Cuál es la fecha límite para enviar la declaración federal de impuestos sobre ingresos?",
		Answers:     []string{"April 15"},
		Explanation: "Federal income tax forms are due April 15."},
	{ID: 57, Category: "rights",
		Question:    "When must all men register for the Selective Service?",
		QuestionEs:  "¿Cuándo deben inscribirse todos los hombres en el Servicio Selectivo?",
		Answers:     []string{"at age 18", "between 18 and 26"},
		Explanation: "Men register for Selective Service at age eighteen."},
	{ID: 58, Category: "colonial",
		Question:    "What is one reason colonists came to America?",
		QuestionEs:  "¿Cuál es una razón por la que los colonos vinieron a América?",
		Answers:     []string{"freedom", "political liberty", "religious freedom", "economic opportunity", "escape persecution"},
		Explanation: "Colonists came for freedom, opportunity, and to escape persecution."},
	{ID: 59, Category: "colonial",
		Question:    "Who lived in America before the Europeans arrived?",
		QuestionEs:  "¿Quiénes vivían en América antes de la llegada de los europeos?",
		Answers:     []string{"American Indians", "Native Americans"},
		Explanation: "Native Americans lived here first."},
	{ID: 60, Category: "colonial",
		Question:    "What group of people was taken to America and sold as slaves?",
		QuestionEs:  "¿Qué grupo de personas fue traído a América y vendido como esclavos?",
		Answers:     []string{"Africans", "people from Africa"},
		Explanation: "Africans were brought and sold as slaves."},
	{ID: 61, Category: "colonial",
		Question:    "Why did the colonists fight the British?",
		QuestionEs:  "¿Por qué lucharon los colonos contra los británicos?",
		Answers:     []string{"because of high taxes", "taxation without representation", "because the British army stayed in their houses", "because they didn't have self-government"},
		Explanation: "High taxes without representation and lack of self-government."},
	{ID: 62, Category: "colonial",
		Question:    "Who wrote the Declaration of Independence?",
		QuestionEs:  "¿Quién escribió la Declaración de Independencia?",
		Answers:     []string{"Thomas Jefferson", "Jefferson"},
		Explanation: "Thomas Jefferson wrote the Declaration of Independence."},
	{ID: 63, Category: "colonial",
		Question:    "When was the Declaration of Independence adopted?",
		QuestionEs:  "¿Cuándo fue adoptada la Declaración de Independencia?",
		Answers:     []string{"July 4, 1776"},
		Explanation: "It was adopted on July 4, 1776."},
	{ID: 64, Category: "colonial",
		Question:    "There were 13 original states. Name three.",
		QuestionEs:  "Había 13 estados originales. Nombre tres.",
		Answers:     []string{"New York, New Jersey, and Pennsylvania", "Virginia, Massachusetts, and Georgia", "Maryland, Delaware, and Connecticut", "North Carolina, South Carolina, and New Hampshire", "Rhode Island"},
		Explanation: "Any three of the original thirteen colonies."},
	{ID: 65, Category: "colonial",
		Question:    "What happened at the Constitutional Convention?",
		QuestionEs:  "¿Qué ocurrió en la Convención Constitucional?",
		Answers:     []string{"the Constitution was written", "the Founding Fathers wrote the Constitution"},
		Explanation: "The Founding Fathers wrote the Constitution in 1787."},
	{ID: 66, Category: "colonial",
		Question:    "When was the Constitution written?",
		QuestionEs:  "¿Cuándo fue escrita la Constitución?",
		Answers:     []string{"1787"},
		Explanation: "The Constitution was written in 1787."},
	{ID: 67, Category: "colonial",
		Question:    "The Federalist Papers supported the passage of the U.S. Constitution. Name one of the writers.",
		QuestionEs:  "Los ensayos conocidos como los Federalist Papers respaldaron la aprobación de la Constitución. Nombre a uno de sus autores.",
		Answers:     []string{"James Madison", "Alexander Hamilton", "John Jay", "Publius"},
		Explanation: "Madison, Hamilton, and Jay wrote as Publius."},
	{ID: 68, Category: "colonial",
		Question:    "What is one thing Benjamin Franklin is famous for?",
		QuestionEs:  "Mencione una razón por la que es famoso Benjamin Franklin.",
		Answers:     []string{"U.S. diplomat", "oldest member of the Constitutional Convention", "first Postmaster General of the United States", "writer of Poor Richard's Almanac", "started the first free libraries"},
		Explanation: "Franklin was a diplomat, postmaster, writer, and founder of free libraries."},
	{ID: 69, Category: "colonial",
		Question:    "Who is the Father of Our Country?",
		QuestionEs:  "¿Quién es el Padre de Nuestra Nación?",
		Answers:     []string{"George Washington", "Washington"},
		Explanation: "George Washington is called the Father of Our Country."},
	{ID: 70, Category: "colonial",
		Question:    "Who was the first President?",
		QuestionEs:  "¿Quién fue el primer presidente?",
		Answers:     []string{"George Washington", "Washington"},
		Explanation: "George Washington was the first President."},
	{ID: 71, Category: "1800s",
		Question:    "What territory did the United States buy from France in 1803?",
		QuestionEs:  "¿Qué territorio compró los Estados Unidos a Francia en 1803?",
		Answers:     []string{"the Louisiana Territory", "Louisiana"},
		Explanation: "The Louisiana Purchase of 1803."},
	{ID: 72, Category: "1800s",
		Question:    "Name one war fought by the United States in the 1800s.",
		QuestionEs:  "Mencione una guerra en la que peleó los Estados Unidos durante el siglo XIX.",
		Answers:     []string{"War of 1812", "Mexican-American War", "Civil War", "Spanish-American War"},
		Explanation: "The War of 1812, Mexican-American War, Civil War, or Spanish-American War."},
	{ID: 73, Category: "1800s",
		Question:    "Name the U.S. war between the North and the South.",
		QuestionEs:  "Dé el nombre de la guerra entre el Norte y el Sur de los Estados Unidos.",
		Answers:     []string{"the Civil War", "the War between the States"},
		Explanation: "The Civil War was fought between the North and the South."},
	{ID: 74, Category: "1800s",
		Question:    "Name one problem that led to the Civil War.",
		QuestionEs:  "Mencione un problema que condujo a la Guerra Civil.",
		Answers:     []string{"slavery", "economic reasons", "states' rights"},
		Explanation: "Slavery, economics, and states' rights led to the Civil War."},
	{ID: 75, Category: "1800s",
		Question:    "What was one important thing that Abraham Lincoln did?",
		QuestionEs:  "¿Qué fue una cosa importante que hizo Abraham Lincoln?",
		Answers:     []string{"freed the slaves", "saved the Union", "led the United States during the Civil War", "signed the Emancipation Proclamation"},
		Explanation: "Lincoln freed the slaves and preserved the Union during the Civil War."},
	{ID: 76, Category: "1800s",
		Question:    "What did the Emancipation Proclamation do?",
		QuestionEs:  "¿Qué hizo la Proclamación de Emancipación?",
		Answers:     []string{"freed the slaves", "freed slaves in the Confederacy", "freed slaves in most Southern states"},
		Explanation: "It freed slaves in the Confederate states."},
	{ID: 77, Category: "1800s",
		Question:    "What did Susan B. Anthony do?",
		QuestionEs:  "¿Qué hizo Susan B. Anthony?",
		Answers:     []string{"fought for women's rights", "fought for civil rights"},
		Explanation: "Susan B. Anthony fought for women's rights."},
	{ID: 78, Category: "recent",
		Question:    "Name one war fought by the United States in the 1900s.",
		QuestionEs:  "Mencione una guerra en la que peleó los Estados Unidos durante el siglo XX.",
		Answers:     []string{"World War I", "World War II", "Korean War", "Vietnam War", "Gulf War"},
		Explanation: "World War I and II, Korea, Vietnam, or the Gulf War."},
	{ID: 79, Category: "recent",
		Question:    "Who was President during World War I?",
		QuestionEs:  "¿Quién era el presidente durante la Primera Guerra Mundial?",
		Answers:     []string{"Woodrow Wilson", "Wilson"},
		Explanation: "Woodrow Wilson was President during World War I."},
	{ID: 80, Category: "recent",
		Question:    "Who was President during the Great Depression and World War II?",
		QuestionEs:  "¿Quién era presidente durante la Gran Depresión y la Segunda Guerra Mundial?",
		Answers:     []string{"Franklin Roosevelt", "Roosevelt"},
		Explanation: "Franklin D. Roosevelt led through the Depression and most of World War II."},
	{ID: 81, Category: "recent",
		Question:    "Who did the United States fight in World War II?",
		QuestionEs:  "¿Contra qué países peleó los Estados Unidos en la Segunda Guerra Mundial?",
		Answers:     []string{"Japan, Germany, and Italy"},
		Explanation: "The United States fought Japan, Germany, and Italy."},
	{ID: 82, Category: "recent",
		Question:    "Before he was President, Eisenhower was a general. What war was he in?",
		QuestionEs:  "Antes de ser presidente, Eisenhower era general. ¿En qué guerra participó?",
		Answers:     []string{"World War II"},
		Explanation: "Eisenhower was a general in World War II."},
	{ID: 83, Category: "recent",
		Question:    "During the Cold War, what was the main concern of the United States?",
		QuestionEs:  "Durante la Guerra Fría, ¿cuál era la principal preocupación de los Estados Unidos?",
		Answers:     []string{"Communism"},
		Explanation: "The main concern was the spread of Communism."},
	{ID: 84, Category: "recent",
		Question:    "What movement tried to end racial discrimination?",
		QuestionEs:  "¿Qué movimiento trató de poner fin a la discriminación racial?",
		Answers:     []string{"civil rights movement", "civil rights"},
		Explanation: "The civil rights movement."},
	{ID: 85, Category: "recent",
		Question:    "What did Martin Luther King, Jr. do?",
		QuestionEs:  "¿Qué hizo Martin Luther King, Jr.?",
		Answers:     []string{"fought for civil rights", "worked for equality for all Americans"},
		Explanation: "He fought for civil rights and equality for all Americans."},
	{ID: 86, Category: "recent",
		Question:    "What major event happened on September 11, 2001, in the United States?",
		QuestionEs:  "¿Qué gran evento ocurrió el 11 de septiembre de 2001 en los Estados Unidos?",
		Answers:     []string{"terrorists attacked the United States"},
		Explanation: "Terrorists attacked the United States."},
	{ID: 87, Category: "recent",
		Question:    "Name one American Indian tribe in the United States.",
		QuestionEs:  "Mencione una tribu de indios americanos de los Estados Unidos.",
		Answers:     []string{"Cherokee", "Navajo", "Sioux", "Chippewa", "Choctaw", "Apache", "Iroquois", "Pueblo", "Creek", "Hopi", "Blackfeet", "Seminole", "Cheyenne", "Mohegan", "Shawnee", "Huron", "Oneida", "Lakota", "Crow", "Teton", "Arawak", "Inuit"},
		Explanation: "Any federally recognized tribe is acceptable."},
	{ID: 88, Category: "geography",
		Question:    "Name one of the two longest rivers in the United States.",
		QuestionEs:  "Mencione uno de los dos ríos más largos de los Estados Unidos.",
		Answers:     []string{"Missouri River", "Mississippi River"},
		Explanation: "The Missouri and Mississippi are the two longest rivers."},
	{ID: 89, Category: "geography",
		Question:    "What ocean is on the West Coast of the United States?",
		QuestionEs:  "¿Qué océano está en la costa oeste de los Estados Unidos?",
		Answers:     []string{"Pacific Ocean", "the Pacific"},
		Explanation: "The Pacific Ocean borders the West Coast."},
	{ID: 90, Category: "geography",
		Question:    "What ocean is on the East Coast of the United States?",
		QuestionEs:  "¿Qué océano está en la costa este de los Estados Unidos?",
		Answers:     []string{"Atlantic Ocean", "the Atlantic"},
		Explanation: "The Atlantic Ocean borders the East Coast."},
	{ID: 91, Category: "geography",
		Question:    "Name one U.S. territory.",
		QuestionEs:  "Mencione un territorio de los Estados Unidos.",
		Answers:     []string{"Puerto Rico", "U.S. Virgin Islands", "American Samoa", "Northern Mariana Islands", "Guam"},
		Explanation: "Puerto Rico, the Virgin Islands, American Samoa, the Northern Marianas, or Guam."},
	{ID: 92, Category: "geography",
		Question:    "Name one state that borders Canada.",
		QuestionEs:  "Mencione un estado que tiene frontera con Canadá.",
		Answers:     []string{"Maine", "New Hampshire", "Vermont", "New York", "Pennsylvania", "Ohio", "Michigan", "Minnesota", "North Dakota", "Montana", "Idaho", "Washington", "Alaska"},
		Explanation: "Thirteen states share a border with Canada."},
	{ID: 93, Category: "geography",
		Question:    "Name one state that borders Mexico.",
		QuestionEs:  "Mencione un estado que tiene frontera con México.",
		Answers:     []string{"California", "Arizona", "New Mexico", "Texas"},
		Explanation: "California, Arizona, New Mexico, and Texas border Mexico."},
	{ID: 94, Category: "geography",
		Question:    "What is the capital of the United States?",
		QuestionEs:  "¿Cuál es la capital de los Estados Unidos?",
		Answers:     []string{"Washington, D.C.", "Washington DC"},
		Explanation: "Washington, D.C. is the national capital."},
	{ID: 95, Category: "geography",
		Question:    "Where is the Statue of Liberty?",
		QuestionEs:  "¿Dónde está la Estatua de la Libertad?",
		Answers:     []string{"New York Harbor", "Liberty Island", "New Jersey", "near New York City", "on the Hudson River"},
		Explanation: "On Liberty Island in New York Harbor."},
	{ID: 96, Category: "symbols",
		Question:    "Why does the flag have 13 stripes?",
		QuestionEs:  "¿Por qué hay 13 franjas en la bandera?",
		Answers:     []string{"because there were 13 original colonies", "because the stripes represent the original colonies"},
		Explanation: "The stripes represent the thirteen original colonies."},
	{ID: 97, Category: "symbols",
		Question:    "Why does the flag have 50 stars?",
		QuestionEs:  "¿Por qué hay 50 estrellas en la bandera?",
		Answers:     []string{"because there is one star for each state", "because each star represents a state", "because there are 50 states"},
		Explanation: "One star for each of the fifty states."},
	{ID: 98, Category: "symbols",
		Question:    "What is the name of the national anthem?",
		QuestionEs:  "¿Cómo se llama el himno nacional?",
		Answers:     []string{"The Star-Spangled Banner"},
		Explanation: "The national anthem is The Star-Spangled Banner."},
	{ID: 99, Category: "holidays",
		Question:    "When do we celebrate Independence Day?",
		QuestionEs:  "¿Cuándo celebramos el Día de la Independencia?",
		Answers:     []string{"July 4"},
		Explanation: "Independence Day is celebrated on July 4."},
	{ID: 100, Category: "holidays",
		Question:    "Name two national U.S. holidays.",
		QuestionEs:  "Mencione dos días feriados nacionales de los Estados Unidos.",
		Answers:     []string{"New Year's Day and Christmas", "Martin Luther King, Jr. Day and Presidents' Day", "Memorial Day and Independence Day", "Labor Day and Columbus Day", "Veterans Day and Thanksgiving"},
		Explanation: "Any two federal holidays are acceptable."},
}
